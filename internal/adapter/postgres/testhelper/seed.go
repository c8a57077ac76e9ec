package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplace",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRecord creates a record for userID on the given day.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category string, minutes int, date time.Time) domain.Record {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.Record{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Session " + uniqueSuffix(),
		Category:        category,
		DurationMinutes: minutes,
		Date:            domain.DateOnly(date),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO records (id, user_id, title, category, duration_minutes, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, rec.Title, rec.Category, rec.DurationMinutes, rec.Date, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert record: %v", err)
	}

	return rec
}

// SeedScore sets the score row of userID directly.
func SeedScore(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, totalXP int64) domain.Score {
	t.Helper()
	ctx := context.Background()

	score := domain.Score{
		UserID:    userID,
		TotalXP:   totalXP,
		Level:     domain.LevelForXP(totalXP),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO scores (user_id, total_xp, level, updated_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET total_xp = EXCLUDED.total_xp, level = EXCLUDED.level`,
		score.UserID, score.TotalXP, score.Level, score.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScore insert score: %v", err)
	}

	return score
}
