package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"aoop-portal/internal/app"
	"aoop-portal/internal/domain"
)

// RESTHandler serves quiz content and stateless grading.
type RESTHandler struct {
	service *app.QuizService
}

func NewRESTHandler(service *app.QuizService) *RESTHandler {
	return &RESTHandler{service: service}
}

type gradeRequest struct {
	Answers map[string]string `json:"answers"`
}

type sectionView struct {
	ID    domain.Section `json:"id"`
	Title string         `json:"title"`
}

// Register mounts the REST routes on mux.
func (h *RESTHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /sections", h.listSections)
	mux.HandleFunc("GET /quizzes/{id}", h.getQuiz)
	mux.HandleFunc("POST /quizzes/{id}/grade", h.grade)
}

func (h *RESTHandler) listSections(w http.ResponseWriter, _ *http.Request) {
	sections := domain.AllSections()
	views := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		views = append(views, sectionView{ID: s, Title: s.Title()})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *RESTHandler) getQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.PublicQuiz(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (h *RESTHandler) grade(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid grade request"})
		return
	}
	outcome, err := h.service.Grade(r.Context(), r.PathValue("id"), domain.ResponseSet(req.Answers))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrQuizNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownSection):
		status = http.StatusBadRequest
	default:
		log.Printf("request failed: %v", err)
	}
	writeJSON(w, status, errorPayload{Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
