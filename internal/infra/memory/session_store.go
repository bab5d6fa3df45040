package memory

import (
	"sync"
	"time"

	"aoop-portal/internal/app"
	"github.com/patrickmn/go-cache"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
// Sessions expire after idleTTL without access; every Get slides the deadline.
type SessionStore struct {
	mu       sync.Mutex
	sessions *cache.Cache
}

// NewSessionStore keeps sessions until they sit idle for idleTTL. A
// non-positive idleTTL keeps them forever.
func NewSessionStore(idleTTL time.Duration) *SessionStore {
	ttl, cleanup := idleTTL, 2*idleTTL
	if idleTTL <= 0 {
		ttl, cleanup = cache.NoExpiration, 0
	}
	return &SessionStore{
		sessions: cache.New(ttl, cleanup),
	}
}

func (s *SessionStore) GetOrCreate(sessionID string, create func() *app.Session) *app.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.sessions.Get(sessionID); ok {
		s.sessions.SetDefault(sessionID, v)
		return v.(*app.Session)
	}
	session := create()
	s.sessions.SetDefault(sessionID, session)
	return session
}

func (s *SessionStore) Get(sessionID string) (*app.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, false
	}
	s.sessions.SetDefault(sessionID, v)
	return v.(*app.Session), true
}

func (s *SessionStore) Delete(sessionID string) {
	s.sessions.Delete(sessionID)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	return s.sessions.ItemCount()
}
