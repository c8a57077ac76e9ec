package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to records and timer sessions without a category.
const DefaultCategory = "General"

// Record field limits.
const (
	MaxTitleLength    = 200
	MaxCategoryLength = 50
	MaxMemoLength     = 2000
)

// DateLayout is the wire format of a record date.
const DateLayout = time.DateOnly

// Categories lists the categories offered by clients. Any other non-blank
// category is accepted as well.
var Categories = []string{"General", "Coding", "Math", "Reading", "Science", "Writing"}

// Record is one logged study session. Date is a calendar day stored at UTC
// midnight.
type Record struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Title           string    `db:"title"`
	Category        string    `db:"category"`
	DurationMinutes int       `db:"duration_minutes"`
	Memo            *string   `db:"memo"`
	Date            time.Time `db:"date"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// RecordFilter narrows a record listing. Nil fields are not applied.
type RecordFilter struct {
	From     *time.Time
	To       *time.Time
	Category *string
	Limit    int
	Offset   int
}

// RecordSummary is the aggregate over all records of one user.
type RecordSummary struct {
	TotalMinutes int `db:"total_minutes"`
	RecordCount  int `db:"record_count"`
	ActiveDays   int `db:"active_days"`
}

// CategoryMinutes is the total study time of one category.
type CategoryMinutes struct {
	Category string `db:"category" json:"category"`
	Minutes  int    `db:"minutes"  json:"minutes"`
}

// DailyMinutes is the total study time of one calendar day.
type DailyMinutes struct {
	Date    time.Time `db:"date"`
	Minutes int       `db:"minutes"`
}

// RecordStats is the dashboard view over a user's records.
type RecordStats struct {
	TotalMinutes int
	TotalHours   int
	ActiveDays   int
	RecordCount  int
	ByCategory   []CategoryMinutes
	Daily        []DailyMinutes
}

// DateOnly truncates t to midnight UTC of its calendar day in t's location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HoursFromMinutes converts minutes to whole hours, rounding half up.
func HoursFromMinutes(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + 30) / 60
}
