package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a quiz session has not been started.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound indicates a submitted question ID is invalid.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrChoiceNotFound indicates a submitted choice ID is invalid.
	ErrChoiceNotFound = errors.New("choice not found")
	// ErrQuizIncomplete is returned when submission is attempted before every question is answered.
	ErrQuizIncomplete = errors.New("not every question is answered")
	// ErrAlreadySubmitted is returned when answers change after submission without a reset.
	ErrAlreadySubmitted = errors.New("quiz already submitted, reset first")
	// ErrSessionConflict is returned when a session ID is reused for a different quiz.
	ErrSessionConflict  = errors.New("session belongs to another quiz")
	ErrUnknownSection   = errors.New("unknown section")
	ErrInvalidAnswerKey = errors.New("invalid answer key")
)
