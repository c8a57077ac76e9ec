package leaderboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

var _ scoreReader = &scoreReaderMock{}

type scoreReaderMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Score, error)
	LeaderboardFunc func(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Leaderboard []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockGetByUserID sync.RWMutex
	lockLeaderboard sync.RWMutex
}

func (mock *scoreReaderMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Score, error) {
	if mock.GetByUserIDFunc == nil {
		panic("scoreReaderMock.GetByUserIDFunc: method is nil but scoreReader.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *scoreReaderMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *scoreReaderMock) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if mock.LeaderboardFunc == nil {
		panic("scoreReaderMock.LeaderboardFunc: method is nil but scoreReader.Leaderboard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockLeaderboard.Lock()
	mock.calls.Leaderboard = append(mock.calls.Leaderboard, callInfo)
	mock.lockLeaderboard.Unlock()
	return mock.LeaderboardFunc(ctx, limit)
}

func (mock *scoreReaderMock) LeaderboardCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockLeaderboard.RLock()
	calls := mock.calls.Leaderboard
	mock.lockLeaderboard.RUnlock()
	return calls
}
