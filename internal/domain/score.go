package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// XPPerMinute is the experience awarded per studied minute.
	XPPerMinute = 10
	// XPPerLevel is the experience needed to advance one level.
	XPPerLevel = 1000
)

// Score is a user's accumulated experience. Level always equals
// LevelForXP(TotalXP).
type Score struct {
	UserID    uuid.UUID `db:"user_id"`
	TotalXP   int64     `db:"total_xp"`
	Level     int64     `db:"level"`
	UpdatedAt time.Time `db:"updated_at"`
}

// EmptyScore is the score of a user that has not earned any XP yet.
func EmptyScore(userID uuid.UUID) Score {
	return Score{UserID: userID, TotalXP: 0, Level: 1}
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank      int       `db:"-"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	AvatarURL *string   `db:"avatar_url"`
	TotalXP   int64     `db:"total_xp"`
	Level     int64     `db:"level"`
}

// XPForMinutes returns the experience earned for a session of the given length.
func XPForMinutes(minutes int) int64 {
	if minutes <= 0 {
		return 0
	}
	return int64(minutes) * XPPerMinute
}

// LevelForXP returns 1 + floor(xp / XPPerLevel). Negative xp counts as zero.
func LevelForXP(xp int64) int64 {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/XPPerLevel
}
