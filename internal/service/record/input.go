package record

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

// List and stats limits.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	DefaultStatsDays = 7
	MaxStatsDays     = 90
)

// CreateRecordInput holds parameters for the create operation.
type CreateRecordInput struct {
	Title           string
	Category        string
	DurationMinutes int
	Memo            *string
	Date            time.Time
}

func (i *CreateRecordInput) normalize() {
	i.Title = domain.NormalizeTitle(i.Title)
	i.Category = domain.NormalizeCategory(i.Category)
	i.Memo = normalizeMemo(i.Memo)
}

// Validate validates the create input. Call after normalization.
func (i CreateRecordInput) Validate() error {
	errs := validateFields(i.Title, i.Category, i.DurationMinutes, i.Memo, i.Date)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRecordInput replaces every editable field of a record.
type UpdateRecordInput struct {
	ID              uuid.UUID
	Title           string
	Category        string
	DurationMinutes int
	Memo            *string
	Date            time.Time
}

func (i *UpdateRecordInput) normalize() {
	i.Title = domain.NormalizeTitle(i.Title)
	i.Category = domain.NormalizeCategory(i.Category)
	i.Memo = normalizeMemo(i.Memo)
}

// Validate validates the update input.
func (i UpdateRecordInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateFields(i.Title, i.Category, i.DurationMinutes, i.Memo, i.Date)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRecordsInput filters and pages a record listing. Zero Limit selects
// DefaultListLimit.
type ListRecordsInput struct {
	From     *time.Time
	To       *time.Time
	Category *string
	Limit    int
	Offset   int
}

// Validate validates the list input.
func (i ListRecordsInput) Validate() error {
	var ve domain.ValidationError
	if i.Limit < 0 || i.Limit > MaxListLimit {
		ve.Add("limit", "must be between 1 and 200")
	}
	if i.Offset < 0 {
		ve.Add("offset", "must not be negative")
	}
	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		ve.Add("from", "must not be after to")
	}
	return ve.OrNil()
}

// StatsInput selects the length of the daily series. Zero Days selects
// DefaultStatsDays.
type StatsInput struct {
	Days int
}

// Validate validates the stats input.
func (i StatsInput) Validate() error {
	if i.Days < 0 || i.Days > MaxStatsDays {
		return domain.NewValidationError("days", "must be between 1 and 90")
	}
	return nil
}

func validateFields(title, category string, minutes int, memo *string, date time.Time) []domain.FieldError {
	var errs []domain.FieldError

	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if utf8.RuneCountInString(category) > domain.MaxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long"})
	}

	// No upper bound: a timer session may run for days.
	if minutes < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "must not be negative"})
	}

	if memo != nil && utf8.RuneCountInString(*memo) > domain.MaxMemoLength {
		errs = append(errs, domain.FieldError{Field: "memo", Message: "too long"})
	}

	if date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	return errs
}

// normalizeMemo trims the memo; a blank memo is stored as NULL.
func normalizeMemo(memo *string) *string {
	if memo == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*memo)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
