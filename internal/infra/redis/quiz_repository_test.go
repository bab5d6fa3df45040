package redis

import (
	"context"
	"testing"
	"time"

	"aoop-portal/internal/content"
	"aoop-portal/internal/domain"
	"aoop-portal/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestQuizRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	loader := &countingLoader{QuizLoader: memory.NewStaticQuizLoader(content.Quizzes())}
	repo := NewQuizRepository(client, loader, time.Minute)

	quiz, err := repo.GetQuiz(context.Background(), content.DefaultQuizID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("quiz:" + content.DefaultQuizID + ":content") {
		t.Fatalf("expected quiz content cached in redis")
	}

	// Second call should hit cache, loader not incremented.
	cached, err := repo.GetQuiz(context.Background(), content.DefaultQuizID)
	if err != nil {
		t.Fatalf("get cached quiz: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}

	// The cached copy must still carry the full answer key.
	key, err := cached.AnswerKey()
	if err != nil {
		t.Fatalf("cached answer key: %v", err)
	}
	if correct, _ := key.Correct("q3"); correct != "c" || len(cached.Questions) != len(quiz.Questions) {
		t.Fatalf("cached quiz differs from source: %+v", cached)
	}

	if err := repo.Invalidate(context.Background(), content.DefaultQuizID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	_, _ = repo.GetQuiz(context.Background(), content.DefaultQuizID)
	if loader.calls != 2 {
		t.Fatalf("expected reload after invalidate, loader calls=%d", loader.calls)
	}
}

func TestQuizRepositoryPropagatesLoaderErrors(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewQuizRepository(newClient(mr), memory.NewStaticQuizLoader(nil), time.Minute)
	if _, err := repo.GetQuiz(context.Background(), "missing"); err != domain.ErrQuizNotFound {
		t.Fatalf("expected quiz not found, got %v", err)
	}
}

type countingLoader struct {
	memory.QuizLoader
	calls int
}

func (l *countingLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	l.calls++
	return l.QuizLoader.LoadQuiz(ctx, quizID)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
