// Command sync-leaderboard rebuilds every user's score from their recorded
// study minutes. Record edits and deletions do not adjust XP, so this is the
// explicit reconciliation step.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/studytrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studytrack-backend/internal/adapter/postgres/score"
	"github.com/heartmarshall/studytrack-backend/internal/app"
	"github.com/heartmarshall/studytrack-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	start := time.Now()
	updated, err := score.New(pool).Recompute(ctx)
	if err != nil {
		logger.Error("recompute scores failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("leaderboard synced",
		slog.Int64("users", updated),
		slog.Duration("took", time.Since(start)),
	)
}
