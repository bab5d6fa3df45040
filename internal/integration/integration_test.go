package integration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"aoop-portal/internal/app"
	"aoop-portal/internal/content"
	"aoop-portal/internal/domain"
	"aoop-portal/internal/infra/memory"
	pgloader "aoop-portal/internal/infra/postgres"
	infraredis "aoop-portal/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestQuizAttemptEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedQuiz(t, ctx, pgURL, content.AOOPBasics())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewQuizLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()
	quizRepo := infraredis.NewQuizRepository(redisClient, loader, 5*time.Minute)
	sessionStore := infraredis.NewSessionStore(redisClient, memory.NewSessionStore(5*time.Minute), 5*time.Minute)
	service := app.NewQuizService(sessionStore, quizRepo)

	if _, err := service.Start(ctx, content.DefaultQuizID, "s1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	for q, c := range map[string]string{"q1": "a", "q2": "b", "q3": "a"} {
		if _, err := service.RecordAnswer(ctx, "s1", q, c); err != nil {
			t.Fatalf("answer %s: %v", q, err)
		}
	}

	outcome, err := service.Submit(ctx, "s1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Score.Matched != 2 || outcome.Tier != domain.TierGood {
		t.Fatalf("expected 2/3 good, got %+v", outcome)
	}

	active, err := sessionStore.ActiveSessions(ctx)
	if err != nil || active != 1 {
		t.Fatalf("expected one active session marker, got %d (%v)", active, err)
	}

	if _, err := service.Start(ctx, "missing", "s2"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found from postgres loader, got %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedQuiz(t *testing.T, ctx context.Context, dsn string, quiz domain.Quiz) {
	t.Helper()
	db := pgloader.OpenDB(dsn)
	defer db.Close()

	if _, err := pgloader.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := pgloader.SeedQuizzes(ctx, db, []domain.Quiz{quiz}); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	// Seeding twice must upsert, not fail.
	if err := pgloader.SeedQuizzes(ctx, db, []domain.Quiz{quiz}); err != nil {
		t.Fatalf("reseed quiz: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(opts), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
