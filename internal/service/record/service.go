// Package record implements study record operations and awards XP for new
// records through the score ledger.
package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

// recordRepo defines the record repository interface needed by record service.
type recordRepo interface {
	Create(ctx context.Context, rec domain.Record) (*domain.Record, error)
	Update(ctx context.Context, rec domain.Record) (*domain.Record, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Record, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error)
	Summary(ctx context.Context, userID uuid.UUID) (domain.RecordSummary, error)
	MinutesByCategory(ctx context.Context, userID uuid.UUID) ([]domain.CategoryMinutes, error)
	MinutesByDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyMinutes, error)
}

// scoreLedger atomically adds XP to a user's score.
type scoreLedger interface {
	Increment(ctx context.Context, userID uuid.UUID, deltaXP int64) (*domain.Score, error)
}

// Service implements record operations.
type Service struct {
	log     *slog.Logger
	records recordRepo
	scores  scoreLedger
	clock   clockwork.Clock
}

// NewService creates a new record service instance. A nil clock selects the
// real clock.
func NewService(
	logger *slog.Logger,
	records recordRepo,
	scores scoreLedger,
	clock clockwork.Clock,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		log:     logger.With("service", "record"),
		records: records,
		scores:  scores,
		clock:   clock,
	}
}

// today returns the current calendar day in UTC.
func (s *Service) today() time.Time {
	return domain.DateOnly(s.clock.Now().UTC())
}
