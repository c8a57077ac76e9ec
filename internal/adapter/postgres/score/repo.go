// Package score implements the XP ledger using PostgreSQL.
//
// Every write is a single statement so that concurrent increments for the
// same user serialize on the row lock and never lose an update.
package score

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/studytrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

const table = "scores"

// DefaultLeaderboardLimit is used when a non-positive limit is requested.
const DefaultLeaderboardLimit = 10

// Repo provides score persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new score repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Increment adds deltaXP to the user's total, creating the row on first use,
// and recomputes the level in the same statement.
func (r *Repo) Increment(ctx context.Context, userID uuid.UUID, deltaXP int64) (*domain.Score, error) {
	if deltaXP < 0 {
		return nil, domain.NewValidationError("delta_xp", "must be >= 0")
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "total_xp", "level", "updated_at").
		Values(userID, deltaXP, domain.LevelForXP(deltaXP), squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			total_xp = scores.total_xp + EXCLUDED.total_xp,
			level = 1 + (scores.total_xp + EXCLUDED.total_xp) / ?,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, total_xp, level, updated_at`, domain.XPPerLevel).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "score", userID)
	}

	var s domain.Score
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, sql, args...); err != nil {
		return nil, postgres.MapError(err, "score", userID)
	}
	return &s, nil
}

// GetByUserID returns the user's score, or domain.ErrNotFound when the user
// has never earned XP.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Score, error) {
	sql, args, err := postgres.Builder().
		Select("user_id", "total_xp", "level", "updated_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "score", userID)
	}

	var s domain.Score
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, sql, args...); err != nil {
		return nil, postgres.MapError(err, "score", userID)
	}
	return &s, nil
}

// Leaderboard returns users with positive XP ordered by XP descending.
// Ties are broken by user id so pages are stable. Ranks start at 1.
func (r *Repo) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	sql, args, err := postgres.Builder().
		Select("s.user_id", "u.name", "u.avatar_url", "s.total_xp", "s.level").
		From("scores s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Gt{"s.total_xp": 0}).
		OrderBy("s.total_xp DESC", "s.user_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, limit)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Recompute rebuilds every user's score from the sum of their record
// durations and returns the number of score rows written.
func (r *Repo) Recompute(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recomputeSQL,
		domain.XPPerMinute, domain.XPPerLevel)
	if err != nil {
		return 0, fmt.Errorf("recompute scores: %w", err)
	}
	return tag.RowsAffected(), nil
}

const recomputeSQL = `
INSERT INTO scores (user_id, total_xp, level, updated_at)
SELECT t.user_id, t.xp, 1 + t.xp / $2, now()
FROM (
	SELECT u.id AS user_id, COALESCE(SUM(r.duration_minutes), 0)::BIGINT * $1 AS xp
	FROM users u
	LEFT JOIN records r ON r.user_id = u.id
	GROUP BY u.id
) t
ON CONFLICT (user_id) DO UPDATE SET
	total_xp = EXCLUDED.total_xp,
	level = EXCLUDED.level,
	updated_at = EXCLUDED.updated_at`
