package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aoop-portal/internal/domain"
	"aoop-portal/internal/quiz"
)

// SessionRepository abstracts how quiz sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	// GetOrCreate returns the stored session or stores the one built by create.
	GetOrCreate(sessionID string, create func() *Session) *Session
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// QuizService contains the quiz use cases the presentation layer calls.
type QuizService struct {
	sessions SessionRepository
	quizzes  QuizRepository
}

func NewQuizService(store SessionRepository, quizzes QuizRepository) *QuizService {
	return &QuizService{sessions: store, quizzes: quizzes}
}

// Start opens (or resumes) a session for quizID. The session owns one
// evaluation engine built from the quiz's answer key.
func (s *QuizService) Start(ctx context.Context, quizID, sessionID string) (domain.SessionSnapshot, error) {
	q, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}
	key, err := q.AnswerKey()
	if err != nil {
		return domain.SessionSnapshot{}, fmt.Errorf("quiz %s: %w", quizID, err)
	}

	session := s.sessions.GetOrCreate(sessionID, func() *Session {
		return NewSession(sessionID, q, key)
	})
	if session.QuizID() != quizID {
		return domain.SessionSnapshot{}, domain.ErrSessionConflict
	}
	return session.snapshot(), nil
}

// RecordAnswer stores the visitor's choice for one question.
func (s *QuizService) RecordAnswer(_ context.Context, sessionID, questionID, choiceID string) (domain.SessionSnapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, domain.ErrSessionNotFound
	}
	return session.recordAnswer(questionID, choiceID)
}

// Submit scores the session. It refuses incomplete response sets, mirroring the
// disabled submit button of the portal.
func (s *QuizService) Submit(_ context.Context, sessionID string) (domain.QuizOutcome, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.QuizOutcome{}, domain.ErrSessionNotFound
	}
	return session.submit()
}

// Reset clears the session's answers so the quiz can be taken again.
func (s *QuizService) Reset(_ context.Context, sessionID string) (domain.SessionSnapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, domain.ErrSessionNotFound
	}
	return session.reset(), nil
}

// Navigate switches the active portal section.
func (s *QuizService) Navigate(_ context.Context, sessionID string, section domain.Section) (domain.SessionSnapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, domain.ErrSessionNotFound
	}
	if _, err := domain.ParseSection(string(section)); err != nil {
		return domain.SessionSnapshot{}, err
	}
	return session.navigate(section), nil
}

// Snapshot returns the current session view.
func (s *QuizService) Snapshot(_ context.Context, sessionID string) (domain.SessionSnapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, domain.ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// End drops the session.
func (s *QuizService) End(_ context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}

// Grade scores a response set without creating a session. Unanswered
// questions count as wrong and unknown questions are ignored.
func (s *QuizService) Grade(ctx context.Context, quizID string, responses domain.ResponseSet) (domain.QuizOutcome, error) {
	q, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.QuizOutcome{}, err
	}
	key, err := q.AnswerKey()
	if err != nil {
		return domain.QuizOutcome{}, fmt.Errorf("quiz %s: %w", quizID, err)
	}
	return quiz.Outcome(quizID, quiz.Grade(key, responses)), nil
}

// PublicQuiz returns the quiz content without the answer key.
func (s *QuizService) PublicQuiz(ctx context.Context, quizID string) (domain.PublicQuiz, error) {
	q, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.PublicQuiz{}, err
	}
	return q.Public(), nil
}

// Session is one visitor's walk through the portal: the active section and a
// single quiz attempt.
type Session struct {
	id        string
	quiz      domain.Quiz
	createdAt time.Time
	now       func() time.Time

	mu        sync.Mutex
	engine    *quiz.Engine
	section   domain.Section
	updatedAt time.Time
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string, q domain.Quiz, key domain.AnswerKey) *Session {
	return NewSessionWithClock(id, q, key, time.Now)
}

// NewSessionWithClock is test-only for deterministic timestamps.
func NewSessionWithClock(id string, q domain.Quiz, key domain.AnswerKey, now func() time.Time) *Session {
	created := now()
	return &Session{
		id:        id,
		quiz:      q,
		createdAt: created,
		now:       now,
		engine:    quiz.NewEngine(key),
		section:   domain.SectionHome,
		updatedAt: created,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// QuizID returns the quiz this session is bound to.
func (s *Session) QuizID() string {
	return s.quiz.ID
}

// State reports the quiz attempt state.
func (s *Session) State() domain.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State()
}

func (s *Session) recordAnswer(questionID, choiceID string) (domain.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.State() == domain.StateSubmitted {
		return domain.SessionSnapshot{}, domain.ErrAlreadySubmitted
	}
	question, ok := s.quiz.Question(questionID)
	if !ok {
		return domain.SessionSnapshot{}, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, questionID)
	}
	if !question.HasChoice(choiceID) {
		return domain.SessionSnapshot{}, fmt.Errorf("%w: %s/%s", domain.ErrChoiceNotFound, questionID, choiceID)
	}

	s.engine.RecordAnswer(questionID, choiceID)
	s.section = domain.SectionTest
	s.updatedAt = s.now()
	return s.snapshotLocked(), nil
}

func (s *Session) submit() (domain.QuizOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result, ok := s.engine.Result(); ok {
		return quiz.Outcome(s.quiz.ID, result), nil
	}
	if !s.engine.IsComplete() {
		return domain.QuizOutcome{}, domain.ErrQuizIncomplete
	}
	result := s.engine.Submit()
	s.updatedAt = s.now()
	return quiz.Outcome(s.quiz.ID, result), nil
}

func (s *Session) reset() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
	s.updatedAt = s.now()
	return s.snapshotLocked()
}

func (s *Session) navigate(section domain.Section) domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = section
	s.updatedAt = s.now()
	return s.snapshotLocked()
}

func (s *Session) snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() domain.SessionSnapshot {
	snap := domain.SessionSnapshot{
		SessionID: s.id,
		QuizID:    s.quiz.ID,
		Section:   s.section,
		State:     s.engine.State(),
		Answers:   s.engine.Responses(),
		Answered:  s.engine.Answered(),
		Total:     s.engine.Key().Len(),
		Complete:  s.engine.IsComplete(),
		UpdatedAt: s.updatedAt,
	}
	if result, ok := s.engine.Result(); ok {
		outcome := quiz.Outcome(s.quiz.ID, result)
		snap.Outcome = &outcome
	}
	return snap
}
