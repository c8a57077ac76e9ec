// Package leaderboard exposes the XP ranking and the caller's own score.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/pkg/ctxutil"
)

// Limits applied when the service is built with non-positive values.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// scoreReader defines the score ledger reads needed by leaderboard service.
type scoreReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Score, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// Service implements leaderboard queries.
type Service struct {
	log          *slog.Logger
	scores       scoreReader
	defaultLimit int
	maxLimit     int
}

// NewService creates a new leaderboard service instance.
func NewService(logger *slog.Logger, scores scoreReader, defaultLimit, maxLimit int) *Service {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = min(DefaultLimit, maxLimit)
	}
	return &Service{
		log:          logger.With("service", "leaderboard"),
		scores:       scores,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Top returns the highest scoring users. A zero limit selects the
// configured default.
func (s *Service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit < 1 || limit > s.maxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", s.maxLimit))
	}

	entries, err := s.scores.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard.Top: %w", err)
	}
	return entries, nil
}

// MyScore returns the authenticated user's score. Users who have not earned
// XP yet get a zero score at level 1.
func (s *Service) MyScore(ctx context.Context) (*domain.Score, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	score, err := s.scores.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		empty := domain.EmptyScore(userID)
		return &empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leaderboard.MyScore: %w", err)
	}
	return score, nil
}
