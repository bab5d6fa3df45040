// Package content holds the portal's built-in static quiz.
package content

import "aoop-portal/internal/domain"

// DefaultQuizID identifies the built-in AOOP basics quiz.
const DefaultQuizID = "aoop-basics"

// Quizzes returns the built-in quizzes keyed by ID. Each call returns a fresh
// copy so callers cannot mutate shared content.
func Quizzes() map[string]domain.Quiz {
	basics := AOOPBasics()
	return map[string]domain.Quiz{basics.ID: basics}
}

// AOOPBasics is the knowledge check at the end of the theory section.
func AOOPBasics() domain.Quiz {
	return domain.Quiz{
		ID:    DefaultQuizID,
		Title: "Тест по основам АООП",
		Questions: []domain.Question{
			{
				ID:     "q1",
				Prompt: "Что означает аббревиатура АООП?",
				Choices: []domain.Choice{
					{ID: "a", Text: "Адаптированная основная общеобразовательная программа", Correct: true},
					{ID: "b", Text: "Альтернативная образовательная программа"},
					{ID: "c", Text: "Авторская образовательная программа"},
				},
			},
			{
				ID:     "q2",
				Prompt: "Сколько основных разделов включает АООП?",
				Choices: []domain.Choice{
					{ID: "a", Text: "Два раздела"},
					{ID: "b", Text: "Три раздела", Correct: true},
					{ID: "c", Text: "Четыре раздела"},
				},
			},
			{
				ID:     "q3",
				Prompt: "Какой нормативный документ является базовым для АООП?",
				Choices: []domain.Choice{
					{ID: "a", Text: "Устав образовательной организации"},
					{ID: "b", Text: "Региональный закон об образовании"},
					{ID: "c", Text: "ФГОС НОО обучающихся с ОВЗ", Correct: true},
				},
			},
		},
	}
}
