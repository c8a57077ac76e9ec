// Package record implements the study record repository using PostgreSQL.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/studytrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

const table = "records"

var columns = []string{
	"id", "user_id", "title", "category", "duration_minutes", "memo", "date", "created_at", "updated_at",
}

const returning = "RETURNING id, user_id, title, category, duration_minutes, memo, date, created_at, updated_at"

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "title", "category", "duration_minutes", "memo", "date").
		Values(rec.ID, rec.UserID, rec.Title, rec.Category, rec.DurationMinutes, rec.Memo, rec.Date).
		Suffix(returning)

	return r.getOne(ctx, query, rec.ID)
}

// Update replaces the editable fields of a record owned by rec.UserID.
// A record that does not exist or belongs to another user yields
// domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	query := postgres.Builder().
		Update(table).
		Set("title", rec.Title).
		Set("category", rec.Category).
		Set("duration_minutes", rec.DurationMinutes).
		Set("memo", rec.Memo).
		Set("date", rec.Date).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rec.ID, "user_id": rec.UserID}).
		Suffix(returning)

	return r.getOne(ctx, query, rec.ID)
}

// Delete removes a record owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "record", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "record", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Record, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})

	return r.getOne(ctx, query, id)
}

// List returns the user's records matching filter, newest date first, and
// the total number of matching records ignoring limit and offset.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.From != nil {
		where = append(where, squirrel.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, squirrel.LtOrEq{"date": *filter.To})
	}
	if filter.Category != nil {
		where = append(where, squirrel.Eq{"category": *filter.Category})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "records of user", userID)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "records of user", userID)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("date DESC", "created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "records of user", userID)
	}

	records := make([]domain.Record, 0)
	if err := pgxscan.Select(ctx, q, &records, listSQL, listArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "records of user", userID)
	}

	return records, total, nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// Summary returns total minutes, record count and distinct study days.
func (r *Repo) Summary(ctx context.Context, userID uuid.UUID) (domain.RecordSummary, error) {
	sql, args, err := postgres.Builder().
		Select(
			"COALESCE(SUM(duration_minutes), 0) AS total_minutes",
			"count(*) AS record_count",
			"count(DISTINCT date) AS active_days",
		).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.RecordSummary{}, postgres.MapError(err, "records of user", userID)
	}

	var s domain.RecordSummary
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, sql, args...); err != nil {
		return domain.RecordSummary{}, postgres.MapError(err, "records of user", userID)
	}
	return s, nil
}

// MinutesByCategory returns total minutes per category, largest first.
func (r *Repo) MinutesByCategory(ctx context.Context, userID uuid.UUID) ([]domain.CategoryMinutes, error) {
	sql, args, err := postgres.Builder().
		Select("category", "SUM(duration_minutes) AS minutes").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("category").
		OrderBy("minutes DESC", "category").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "records of user", userID)
	}

	out := make([]domain.CategoryMinutes, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "records of user", userID)
	}
	return out, nil
}

// MinutesByDay returns total minutes per day within [from, to], oldest first.
// Days without records are omitted.
func (r *Repo) MinutesByDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyMinutes, error) {
	sql, args, err := postgres.Builder().
		Select("date", "SUM(duration_minutes) AS minutes").
		From(table).
		Where(squirrel.And{
			squirrel.Eq{"user_id": userID},
			squirrel.GtOrEq{"date": from},
			squirrel.LtOrEq{"date": to},
		}).
		GroupBy("date").
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "records of user", userID)
	}

	out := make([]domain.DailyMinutes, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "records of user", userID)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.Record, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}

	var rec domain.Record
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	return &rec, nil
}
