package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/pkg/ctxutil"
)

// Get returns one of the authenticated user's records. Records of other
// users are reported as ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.records.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("record.Get: %w", err)
	}
	return rec, nil
}

// List returns a page of the authenticated user's records, newest date first.
func (s *Service) List(ctx context.Context, input ListRecordsInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.RecordFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if input.From != nil {
		from := domain.DateOnly(*input.From)
		filter.From = &from
	}
	if input.To != nil {
		to := domain.DateOnly(*input.To)
		filter.To = &to
	}
	if input.Category != nil {
		category := domain.NormalizeCategory(*input.Category)
		filter.Category = &category
	}

	records, total, err := s.records.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("record.List: %w", err)
	}

	return &ListResult{Records: records, Total: total}, nil
}

// Update replaces a record's fields. The score ledger is not adjusted.
func (s *Service) Update(ctx context.Context, input UpdateRecordInput) (*domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.records.Update(ctx, domain.Record{
		ID:              input.ID,
		UserID:          userID,
		Title:           input.Title,
		Category:        input.Category,
		DurationMinutes: input.DurationMinutes,
		Memo:            input.Memo,
		Date:            domain.DateOnly(input.Date),
	})
	if err != nil {
		return nil, fmt.Errorf("record.Update: %w", err)
	}

	s.log.InfoContext(ctx, "record updated",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()))

	return rec, nil
}

// Delete removes a record. XP already awarded for it is kept.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.records.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("record.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.String("user_id", userID.String()),
		slog.String("record_id", id.String()))

	return nil
}
