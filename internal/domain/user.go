package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxUserNameLength is the upper bound on a display name, in characters.
const MaxUserNameLength = 25

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// User represents a registered application user.
type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	AvatarURL    *string   `db:"avatar_url"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ProfileUpdate describes a profile change. A nil PasswordHash keeps the
// current password.
type ProfileUpdate struct {
	Name         string
	Email        string
	PasswordHash *string
}
