package client

import "time"

// User is a user profile.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the answer to register and login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NewRecord is a study session to submit. Date is YYYY-MM-DD.
type NewRecord struct {
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Memo            *string `json:"memo,omitempty"`
	Date            string  `json:"date"`
}

// Record is a stored study session.
type Record struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"durationMinutes"`
	Memo            *string   `json:"memo"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Score is a user's XP and level.
type Score struct {
	TotalXP       int64 `json:"totalXp"`
	Level         int64 `json:"level"`
	XPToNextLevel int64 `json:"xpToNextLevel"`
}

// CreatedRecord is the answer to CreateRecord. Score is nil when the server
// saved the record but could not update the ledger.
type CreatedRecord struct {
	Record   Record `json:"record"`
	XPEarned int64  `json:"xpEarned"`
	Score    *Score `json:"score"`
}

// RecordFilter narrows ListRecords. Dates are YYYY-MM-DD; zero values are
// omitted.
type RecordFilter struct {
	From     string
	To       string
	Category string
	Limit    int
	Offset   int
}

// RecordPage is one page of records.
type RecordPage struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// CategoryMinutes is the total for one category.
type CategoryMinutes struct {
	Category string `json:"category"`
	Minutes  int    `json:"minutes"`
}

// DailyMinutes is the total for one day.
type DailyMinutes struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// Stats summarizes a user's study time.
type Stats struct {
	TotalMinutes int               `json:"totalMinutes"`
	TotalHours   int               `json:"totalHours"`
	ActiveDays   int               `json:"activeDays"`
	RecordCount  int               `json:"recordCount"`
	ByCategory   []CategoryMinutes `json:"byCategory"`
	Daily        []DailyMinutes    `json:"daily"`
}

// LeaderboardEntry is one ranked user.
type LeaderboardEntry struct {
	Rank      int     `json:"rank"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	TotalXP   int64   `json:"totalXp"`
	Level     int64   `json:"level"`
}
