package cli

import (
	"context"
	"fmt"
	"log"

	"aoop-portal/internal/config"
	"aoop-portal/internal/content"
	"aoop-portal/internal/domain"
	"aoop-portal/internal/infra/postgres"
	"github.com/spf13/cobra"
)

// NewSeedCmd copies the built-in quizzes into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and upsert the built-in quizzes into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	db := postgres.OpenDB(cfg.Postgres.URL)
	defer db.Close()

	builtin := content.Quizzes()
	quizzes := make([]domain.Quiz, 0, len(builtin))
	for _, q := range builtin {
		quizzes = append(quizzes, q)
	}
	if err := postgres.SeedQuizzes(ctx, db, quizzes); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Printf("seeded %d quizzes", len(quizzes))
	return nil
}
