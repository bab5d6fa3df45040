package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// Choice is one selectable answer of a question.
type Choice struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question models a single-choice question with exactly one correct choice.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []Choice `json:"choices"`
}

// Quiz is an ordered collection of questions.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// AnswerKey derives the immutable answer key of the quiz.
func (q Quiz) AnswerKey() (AnswerKey, error) {
	return NewAnswerKey(q.Questions)
}

// Question looks up a question by ID.
func (q Quiz) Question(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// HasChoice reports whether choiceID is one of the question's choices.
func (q Question) HasChoice(choiceID string) bool {
	for _, c := range q.Choices {
		if c.ID == choiceID {
			return true
		}
	}
	return false
}

// AnswerKey maps question IDs to their correct choice. It is fixed at
// construction; all accessors return copies.
type AnswerKey struct {
	order   []string
	correct map[string]string
}

// NewAnswerKey builds an answer key from quiz questions, preserving their order.
func NewAnswerKey(questions []Question) (AnswerKey, error) {
	if len(questions) == 0 {
		return AnswerKey{}, fmt.Errorf("%w: no questions", ErrInvalidAnswerKey)
	}
	key := AnswerKey{
		order:   make([]string, 0, len(questions)),
		correct: make(map[string]string, len(questions)),
	}
	for _, q := range questions {
		if q.ID == "" {
			return AnswerKey{}, fmt.Errorf("%w: question without id", ErrInvalidAnswerKey)
		}
		if _, dup := key.correct[q.ID]; dup {
			return AnswerKey{}, fmt.Errorf("%w: duplicate question %q", ErrInvalidAnswerKey, q.ID)
		}
		seen := make(map[string]struct{}, len(q.Choices))
		correct := ""
		for _, c := range q.Choices {
			if _, dup := seen[c.ID]; dup {
				return AnswerKey{}, fmt.Errorf("%w: duplicate choice %q in question %q", ErrInvalidAnswerKey, c.ID, q.ID)
			}
			seen[c.ID] = struct{}{}
			if !c.Correct {
				continue
			}
			if correct != "" {
				return AnswerKey{}, fmt.Errorf("%w: question %q has more than one correct choice", ErrInvalidAnswerKey, q.ID)
			}
			correct = c.ID
		}
		if correct == "" {
			return AnswerKey{}, fmt.Errorf("%w: question %q has no correct choice", ErrInvalidAnswerKey, q.ID)
		}
		key.order = append(key.order, q.ID)
		key.correct[q.ID] = correct
	}
	return key, nil
}

// AnswerKeyFromMap builds an answer key from a plain mapping. Question order is
// the sorted order of the IDs.
func AnswerKeyFromMap(m map[string]string) (AnswerKey, error) {
	if len(m) == 0 {
		return AnswerKey{}, fmt.Errorf("%w: no questions", ErrInvalidAnswerKey)
	}
	key := AnswerKey{
		order:   make([]string, 0, len(m)),
		correct: make(map[string]string, len(m)),
	}
	for questionID, choiceID := range m {
		if questionID == "" || choiceID == "" {
			return AnswerKey{}, fmt.Errorf("%w: empty id in mapping", ErrInvalidAnswerKey)
		}
		key.order = append(key.order, questionID)
		key.correct[questionID] = choiceID
	}
	sort.Strings(key.order)
	return key, nil
}

// Len is the number of questions in the key.
func (k AnswerKey) Len() int {
	return len(k.order)
}

// QuestionIDs returns the question IDs in quiz order.
func (k AnswerKey) QuestionIDs() []string {
	ids := make([]string, len(k.order))
	copy(ids, k.order)
	return ids
}

// Correct returns the correct choice for a question.
func (k AnswerKey) Correct(questionID string) (string, bool) {
	choiceID, ok := k.correct[questionID]
	return choiceID, ok
}

// Has reports whether the key covers questionID.
func (k AnswerKey) Has(questionID string) bool {
	_, ok := k.correct[questionID]
	return ok
}

// ResponseSet maps question IDs to the chosen choice IDs.
type ResponseSet map[string]string

// ScoreResult is the outcome of scoring a response set against an answer key.
type ScoreResult struct {
	Matched    int     `json:"matched"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Rounded returns the percentage rounded to the nearest integer for display.
func (r ScoreResult) Rounded() int {
	return int(math.Round(r.Percentage))
}

// FeedbackTier is a coarse classification of a score.
type FeedbackTier int

const (
	TierNeedsReview FeedbackTier = iota
	TierGood
	TierExcellent
)

func (t FeedbackTier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	default:
		return "needs_review"
	}
}

// Message is the feedback line shown next to the score.
func (t FeedbackTier) Message() string {
	switch t {
	case TierExcellent:
		return "Отлично! Вы полностью освоили материал!"
	case TierGood:
		return "Хороший результат! Рекомендуем повторить некоторые темы."
	default:
		return "Рекомендуем ещё раз изучить материал теоретического раздела."
	}
}

func (t FeedbackTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// QuizState is the lifecycle state of a quiz attempt.
type QuizState int

const (
	StateUnanswered QuizState = iota
	StateInProgress
	StateSubmitted
)

func (s QuizState) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateSubmitted:
		return "submitted"
	default:
		return "unanswered"
	}
}

func (s QuizState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// QuizOutcome is what the presentation layer shows after submission.
type QuizOutcome struct {
	QuizID  string       `json:"quizId"`
	Score   ScoreResult  `json:"score"`
	Rounded int          `json:"rounded"`
	Tier    FeedbackTier `json:"tier"`
	Message string       `json:"message"`
	Summary string       `json:"summary"`
}

// SessionSnapshot is the client-facing view of a quiz session.
type SessionSnapshot struct {
	SessionID string            `json:"sessionId"`
	QuizID    string            `json:"quizId"`
	Section   Section           `json:"section"`
	State     QuizState         `json:"state"`
	Answers   map[string]string `json:"answers"`
	Answered  int               `json:"answered"`
	Total     int               `json:"total"`
	Complete  bool              `json:"complete"`
	Outcome   *QuizOutcome      `json:"outcome,omitempty"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// PublicChoice is a choice without its correctness flag.
type PublicChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// PublicQuestion is a question safe to send to clients.
type PublicQuestion struct {
	ID      string         `json:"id"`
	Prompt  string         `json:"prompt"`
	Choices []PublicChoice `json:"choices"`
}

// PublicQuiz strips the answer key from a quiz.
type PublicQuiz struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Questions []PublicQuestion `json:"questions"`
}

// Public returns the quiz without correct flags.
func (q Quiz) Public() PublicQuiz {
	out := PublicQuiz{ID: q.ID, Title: q.Title, Questions: make([]PublicQuestion, 0, len(q.Questions))}
	for _, question := range q.Questions {
		pq := PublicQuestion{ID: question.ID, Prompt: question.Prompt, Choices: make([]PublicChoice, 0, len(question.Choices))}
		for _, c := range question.Choices {
			pq.Choices = append(pq.Choices, PublicChoice{ID: c.ID, Text: c.Text})
		}
		out.Questions = append(out.Questions, pq)
	}
	return out
}
