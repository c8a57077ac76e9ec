// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/studytrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "name", "email", "password_hash", "avatar_url", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	return r.getOne(ctx, query, id)
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("lower(email) = lower(?)", email)

	return r.getOne(ctx, query, email)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "name", "email", "password_hash", "avatar_url").
		Values(u.ID, u.Name, u.Email, u.PasswordHash, u.AvatarURL).
		Suffix(returning())

	return r.getOne(ctx, query, u.ID)
}

// UpdateProfile replaces name and email, and the password hash when one is given.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("name", upd.Name).
		Set("email", upd.Email).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning())

	if upd.PasswordHash != nil {
		query = query.Set("password_hash", *upd.PasswordHash)
	}

	return r.getOne(ctx, query, id)
}

// UpdateAvatar sets the avatar URL of the given user.
func (r *Repo) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("avatar_url", avatarURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning())

	return r.getOne(ctx, query, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id any) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

func returning() string {
	return "RETURNING id, name, email, password_hash, avatar_url, created_at, updated_at"
}
