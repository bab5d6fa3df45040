package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aoop-portal/internal/app"
	"aoop-portal/internal/config"
	"aoop-portal/internal/content"
	"aoop-portal/internal/infra/memory"
	pgloader "aoop-portal/internal/infra/postgres"
	redisinfra "aoop-portal/internal/infra/redis"
	transport "aoop-portal/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the portal server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, found, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if !found {
		log.Printf("config %s not found, using built-in content and in-memory stores", configPath)
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.QuizLoader = memory.NewStaticQuizLoader(content.Quizzes())
	if pool != nil {
		loader = pgloader.NewQuizLoader(pool)
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var quizRepo app.QuizRepository
	if redisClient != nil {
		quizRepo = redisinfra.NewQuizRepository(redisClient, loader, quizTTL)
	} else {
		quizRepo = memory.NewQuizRepository(loader, quizTTL)
	}

	idleTTL := config.TTLDuration(cfg.Session.IdleTTL, 30*time.Minute)
	var store app.SessionRepository = memory.NewSessionStore(idleTTL)
	if redisClient != nil {
		store = redisinfra.NewSessionStore(redisClient, store, redisTTL)
	}
	service := app.NewQuizService(store, quizRepo)

	defaultQuiz := cfg.Quiz.DefaultID
	if defaultQuiz == "" {
		defaultQuiz = content.DefaultQuizID
	}
	wsHandler := transport.NewWSHandler(service, transport.WSConfig{
		DefaultQuizID:     defaultQuiz,
		MessagesPerSecond: cfg.Server.MessagesPerSecond,
		Burst:             cfg.Server.Burst,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	transport.NewRESTHandler(service).Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting portal on :%s (default quiz %s)", finalPort, defaultQuiz)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
