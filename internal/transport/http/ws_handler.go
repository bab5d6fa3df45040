package http

import (
	"encoding/json"
	"log"
	"net/http"

	"aoop-portal/internal/app"
	"aoop-portal/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// WSConfig tunes the websocket session channel.
type WSConfig struct {
	DefaultQuizID     string
	MessagesPerSecond float64
	Burst             int
}

type WSHandler struct {
	service  *app.QuizService
	cfg      WSConfig
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, cfg WSConfig) *WSHandler {
	if cfg.MessagesPerSecond <= 0 {
		cfg.MessagesPerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	return &WSHandler{
		service: service,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	QuestionID string `json:"questionId"`
	ChoiceID   string `json:"choiceId"`
}

type navigatePayload struct {
	Section string `json:"section"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and drives one portal session:
// answers, submission, reset and section navigation.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	if quizID == "" {
		quizID = h.cfg.DefaultQuizID
	}
	if quizID == "" {
		http.Error(w, "missing quizId", http.StatusBadRequest)
		return
	}
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	snap, err := h.service.Start(ctx, quizID, sessionID)
	if err != nil {
		_ = conn.WriteJSON(errorMessage(err))
		return
	}
	if err := conn.WriteJSON(outboundMessage{Type: "state", Payload: snap}); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	limiter := rate.NewLimiter(rate.Limit(h.cfg.MessagesPerSecond), h.cfg.Burst)
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}

		var reply outboundMessage
		if !limiter.Allow() {
			reply = outboundMessage{Type: "error", Payload: errorPayload{Message: "too many requests"}}
		} else {
			reply = h.dispatch(r, sessionID, inbound)
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

func (h *WSHandler) dispatch(r *http.Request, sessionID string, inbound inboundMessage) outboundMessage {
	ctx := r.Context()
	switch inbound.Type {
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return outboundMessage{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
		}
		return stateOrError(h.service.RecordAnswer(ctx, sessionID, payload.QuestionID, payload.ChoiceID))
	case "submit":
		outcome, err := h.service.Submit(ctx, sessionID)
		if err != nil {
			return errorMessage(err)
		}
		return outboundMessage{Type: "result", Payload: outcome}
	case "reset":
		return stateOrError(h.service.Reset(ctx, sessionID))
	case "navigate":
		var payload navigatePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return outboundMessage{Type: "error", Payload: errorPayload{Message: "invalid navigate payload"}}
		}
		section, err := domain.ParseSection(payload.Section)
		if err != nil {
			return errorMessage(err)
		}
		return stateOrError(h.service.Navigate(ctx, sessionID, section))
	case "state":
		return stateOrError(h.service.Snapshot(ctx, sessionID))
	default:
		return outboundMessage{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
	}
}

func stateOrError(snap domain.SessionSnapshot, err error) outboundMessage {
	if err != nil {
		return errorMessage(err)
	}
	return outboundMessage{Type: "state", Payload: snap}
}

func errorMessage(err error) outboundMessage {
	return outboundMessage{Type: "error", Payload: errorPayload{Message: err.Error()}}
}
