package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"aoop-portal/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// QuizLoader fetches quiz content from a backing store (static content, Postgres).
type QuizLoader interface {
	LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// QuizRepository caches quiz content in Redis and falls back to a loader on
// cache miss. Content is stored as JSON:  SET quiz:{quizID}:content {json} EX ttl
type QuizRepository struct {
	client *redis.Client
	loader QuizLoader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuizRepository(client *redis.Client, loader QuizLoader, ttl time.Duration) *QuizRepository {
	return &QuizRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuizRepository) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	if quiz, ok := r.cached(ctx, quizID); ok {
		return quiz, nil
	}

	result, err, _ := r.sf.Do(quizID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if quiz, ok := r.cached(ctx, quizID); ok {
			return quiz, nil
		}

		quiz, err := r.loader.LoadQuiz(ctx, quizID)
		if err != nil {
			return domain.Quiz{}, err
		}
		if _, err := quiz.AnswerKey(); err != nil {
			return domain.Quiz{}, fmt.Errorf("quiz %s: %w", quizID, err)
		}

		data, err := json.Marshal(quiz)
		if err != nil {
			return domain.Quiz{}, fmt.Errorf("marshal quiz: %w", err)
		}
		// A failed cache write only costs a reload later.
		if err := r.client.Set(ctx, r.contentKey(quizID), data, r.ttlWithJitter()).Err(); err != nil {
			log.Printf("redis cache write for quiz %s failed: %v", quizID, err)
		}
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

// Invalidate removes the cached copy of a quiz.
func (r *QuizRepository) Invalidate(ctx context.Context, quizID string) error {
	return r.client.Del(ctx, r.contentKey(quizID)).Err()
}

func (r *QuizRepository) cached(ctx context.Context, quizID string) (domain.Quiz, bool) {
	data, err := r.client.Get(ctx, r.contentKey(quizID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("redis cache read for quiz %s failed: %v", quizID, err)
		}
		return domain.Quiz{}, false
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(data, &quiz); err != nil {
		return domain.Quiz{}, false
	}
	return quiz, true
}

func (r *QuizRepository) contentKey(quizID string) string {
	return "quiz:" + quizID + ":content"
}

// ttlWithJitter returns 0 (no expiry) for a non-positive ttl.
func (r *QuizRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
