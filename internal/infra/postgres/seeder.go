package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"aoop-portal/internal/domain"
	"aoop-portal/internal/infra/postgres/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

type quizRow struct {
	bun.BaseModel `bun:"table:quizzes"`

	ID        string          `bun:"id,pk"`
	Data      json.RawMessage `bun:"data,type:jsonb,notnull"`
	UpdatedAt time.Time       `bun:"updated_at,notnull"`
}

// OpenDB opens a bun handle over the pgdriver connector.
func OpenDB(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Migrate applies all pending schema migrations.
func Migrate(ctx context.Context, db *bun.DB) (*migrate.MigrationGroup, error) {
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return group, nil
}

// SeedQuizzes upserts quizzes into the quizzes table. Each quiz must carry a
// valid answer key.
func SeedQuizzes(ctx context.Context, db *bun.DB, quizzes []domain.Quiz) error {
	if len(quizzes) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]quizRow, 0, len(quizzes))
	for _, quiz := range quizzes {
		if _, err := quiz.AnswerKey(); err != nil {
			return fmt.Errorf("quiz %s: %w", quiz.ID, err)
		}
		data, err := json.Marshal(quiz)
		if err != nil {
			return fmt.Errorf("marshal quiz %s: %w", quiz.ID, err)
		}
		rows = append(rows, quizRow{ID: quiz.ID, Data: data, UpdatedAt: now})
	}

	_, err := db.NewInsert().
		Model(&rows).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("seed quizzes: %w", err)
	}
	return nil
}
