package redis

import (
	"context"
	"time"

	"aoop-portal/internal/app"
	"github.com/redis/go-redis/v9"
)

// SessionStore decorates a local app.SessionRepository with Redis liveness markers.
// Notes:
//   - Engines stay in the local repository; answers are never written to Redis.
//   - Each session gets a marker (value = quiz ID) whose TTL is refreshed on
//     access, so every instance sharing Redis can count active visitors.
type SessionStore struct {
	client *redis.Client
	local  app.SessionRepository
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, local app.SessionRepository, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		local:  local,
		ttl:    ttl,
	}
}

func (s *SessionStore) GetOrCreate(sessionID string, create func() *app.Session) *app.Session {
	session := s.local.GetOrCreate(sessionID, create)
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(sessionID), session.QuizID(), s.ttl).Err()
	return session
}

func (s *SessionStore) Get(sessionID string) (*app.Session, bool) {
	session, ok := s.local.Get(sessionID)
	if ok && s.ttl > 0 {
		_ = s.client.Expire(context.Background(), s.key(sessionID), s.ttl).Err()
	}
	return session, ok
}

func (s *SessionStore) Delete(sessionID string) {
	s.local.Delete(sessionID)
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

// ActiveSessions counts liveness markers across all instances sharing Redis.
func (s *SessionStore) ActiveSessions(ctx context.Context) (int, error) {
	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.key("*"), 100).Result()
		if err != nil {
			return 0, err
		}
		count += len(keys)
		if next == 0 {
			return count, nil
		}
		cursor = next
	}
}

func (s *SessionStore) key(sessionID string) string {
	return "portal:session:" + sessionID
}
