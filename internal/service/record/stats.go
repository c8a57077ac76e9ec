package record

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/pkg/ctxutil"
)

// Stats aggregates the authenticated user's records: totals, minutes per
// category, and a zero-filled daily series ending today (UTC).
func (s *Service) Stats(ctx context.Context, input StatsInput) (*domain.RecordStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	days := input.Days
	if days == 0 {
		days = DefaultStatsDays
	}

	to := s.today()
	from := to.AddDate(0, 0, -(days - 1))

	var (
		summary    domain.RecordSummary
		byCategory []domain.CategoryMinutes
		daily      []domain.DailyMinutes
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.records.Summary(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		byCategory, err = s.records.MinutesByCategory(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		daily, err = s.records.MinutesByDay(gctx, userID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("record.Stats: %w", err)
	}

	return &domain.RecordStats{
		TotalMinutes: summary.TotalMinutes,
		TotalHours:   domain.HoursFromMinutes(summary.TotalMinutes),
		ActiveDays:   summary.ActiveDays,
		RecordCount:  summary.RecordCount,
		ByCategory:   byCategory,
		Daily:        fillDays(from, days, daily),
	}, nil
}

// fillDays expands sparse per-day totals into one entry per day starting at
// from.
func fillDays(from time.Time, days int, sparse []domain.DailyMinutes) []domain.DailyMinutes {
	byDate := make(map[time.Time]int, len(sparse))
	for _, d := range sparse {
		byDate[domain.DateOnly(d.Date)] += d.Minutes
	}

	out := make([]domain.DailyMinutes, days)
	for i := range out {
		day := from.AddDate(0, 0, i)
		out[i] = domain.DailyMinutes{Date: day, Minutes: byDate[day]}
	}
	return out
}
