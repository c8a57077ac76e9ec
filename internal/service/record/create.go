package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/pkg/ctxutil"
)

const ledgerTimeout = 5 * time.Second

// Create stores a new record for the authenticated user and adds the XP it
// earns to the user's score.
//
// A failed ledger update does not fail the call: the record stays created,
// the failure is logged and counted, and the result carries a nil Score.
func (s *Service) Create(ctx context.Context, input CreateRecordInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.records.Create(ctx, domain.Record{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           input.Title,
		Category:        input.Category,
		DurationMinutes: input.DurationMinutes,
		Memo:            input.Memo,
		Date:            domain.DateOnly(input.Date),
	})
	if err != nil {
		return nil, fmt.Errorf("record.Create: %w", err)
	}
	recordsCreatedTotal.Inc()

	xp := domain.XPForMinutes(rec.DurationMinutes)
	result := &CreateResult{Record: rec, XPEarned: xp}

	// The record is committed; the XP must follow even if the caller has
	// gone away in the meantime.
	ledgerCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ledgerTimeout)
	defer cancel()

	score, err := s.scores.Increment(ledgerCtx, userID, xp)
	if err != nil {
		scoreIncrementFailuresTotal.Inc()
		s.log.ErrorContext(ctx, "score increment failed",
			slog.String("user_id", userID.String()),
			slog.String("record_id", rec.ID.String()),
			slog.Int64("xp", xp),
			slog.String("error", err.Error()))
		return result, nil
	}
	xpAwardedTotal.Add(float64(xp))
	result.Score = score

	s.log.InfoContext(ctx, "record created",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
		slog.Int("duration_minutes", rec.DurationMinutes),
		slog.Int64("total_xp", score.TotalXP))

	return result, nil
}
