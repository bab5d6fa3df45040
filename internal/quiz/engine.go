// Package quiz implements answer capture, scoring and result classification
// for a single quiz attempt.
package quiz

import "aoop-portal/internal/domain"

// Tier thresholds, in percent.
const (
	excellentThreshold = 100
	goodThreshold      = 66
)

// Engine evaluates one attempt against a fixed answer key. It is not safe for
// concurrent use; the owning session serializes access.
type Engine struct {
	key       domain.AnswerKey
	responses domain.ResponseSet
	submitted bool
	result    domain.ScoreResult
}

// NewEngine returns an engine in the Unanswered state.
func NewEngine(key domain.AnswerKey) *Engine {
	return &Engine{
		key:       key,
		responses: make(domain.ResponseSet, key.Len()),
	}
}

// Key returns the answer key the engine scores against.
func (e *Engine) Key() domain.AnswerKey {
	return e.key
}

// RecordAnswer stores or overwrites the choice for a question. Questions
// outside the answer key are ignored, and so is any call after Submit until
// Reset is invoked.
func (e *Engine) RecordAnswer(questionID, choiceID string) {
	if e.submitted || !e.key.Has(questionID) {
		return
	}
	e.responses[questionID] = choiceID
}

// IsComplete reports whether every question in the key has a response.
func (e *Engine) IsComplete() bool {
	for _, id := range e.key.QuestionIDs() {
		if _, ok := e.responses[id]; !ok {
			return false
		}
	}
	return true
}

// Submit scores the current responses and moves the engine to Submitted.
// Unanswered questions count as incorrect; gating on IsComplete is the
// caller's job.
func (e *Engine) Submit() domain.ScoreResult {
	matched := 0
	for _, id := range e.key.QuestionIDs() {
		correct, _ := e.key.Correct(id)
		if chosen, ok := e.responses[id]; ok && chosen == correct {
			matched++
		}
	}
	total := e.key.Len()
	percentage := 0.0
	if total > 0 {
		percentage = 100 * float64(matched) / float64(total)
	}
	e.result = domain.ScoreResult{Matched: matched, Total: total, Percentage: percentage}
	e.submitted = true
	return e.result
}

// Reset clears all responses and the submitted flag.
func (e *Engine) Reset() {
	e.responses = make(domain.ResponseSet, e.key.Len())
	e.submitted = false
	e.result = domain.ScoreResult{}
}

// State derives the lifecycle state from the responses and submitted flag.
func (e *Engine) State() domain.QuizState {
	switch {
	case e.submitted:
		return domain.StateSubmitted
	case len(e.responses) > 0:
		return domain.StateInProgress
	default:
		return domain.StateUnanswered
	}
}

// Responses returns a copy of the recorded responses.
func (e *Engine) Responses() domain.ResponseSet {
	out := make(domain.ResponseSet, len(e.responses))
	for k, v := range e.responses {
		out[k] = v
	}
	return out
}

// Answered is the number of questions with a response.
func (e *Engine) Answered() int {
	return len(e.responses)
}

// Result returns the last submitted score, if the engine is Submitted.
func (e *Engine) Result() (domain.ScoreResult, bool) {
	return e.result, e.submitted
}

// FeedbackTier classifies a percentage: exactly 100 is Excellent, 66 and
// above is Good, anything lower needs review.
func FeedbackTier(percentage float64) domain.FeedbackTier {
	switch {
	case percentage == excellentThreshold:
		return domain.TierExcellent
	case percentage >= goodThreshold:
		return domain.TierGood
	default:
		return domain.TierNeedsReview
	}
}
