package quiz

import (
	"fmt"

	"aoop-portal/internal/domain"
)

// Outcome decorates a score with its tier and the display strings.
func Outcome(quizID string, score domain.ScoreResult) domain.QuizOutcome {
	tier := FeedbackTier(score.Percentage)
	return domain.QuizOutcome{
		QuizID:  quizID,
		Score:   score,
		Rounded: score.Rounded(),
		Tier:    tier,
		Message: tier.Message(),
		Summary: fmt.Sprintf("Ваш результат: %d из %d", score.Matched, score.Total),
	}
}

// Grade scores a complete response set in one shot without keeping state.
func Grade(key domain.AnswerKey, responses domain.ResponseSet) domain.ScoreResult {
	engine := NewEngine(key)
	for questionID, choiceID := range responses {
		engine.RecordAnswer(questionID, choiceID)
	}
	return engine.Submit()
}
