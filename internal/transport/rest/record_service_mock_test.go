package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/internal/service/record"
)

var _ recordService = &recordServiceMock{}

type recordServiceMock struct {
	CreateFunc func(ctx context.Context, input record.CreateRecordInput) (*record.CreateResult, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	ListFunc   func(ctx context.Context, input record.ListRecordsInput) (*record.ListResult, error)
	UpdateFunc func(ctx context.Context, input record.UpdateRecordInput) (*domain.Record, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	StatsFunc  func(ctx context.Context, input record.StatsInput) (*domain.RecordStats, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input record.CreateRecordInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input record.ListRecordsInput
		}
		Update []struct {
			Ctx   context.Context
			Input record.UpdateRecordInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Stats []struct {
			Ctx   context.Context
			Input record.StatsInput
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockStats  sync.RWMutex
}

func (mock *recordServiceMock) Create(ctx context.Context, input record.CreateRecordInput) (*record.CreateResult, error) {
	if mock.CreateFunc == nil {
		panic("recordServiceMock.CreateFunc: method is nil but recordService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input record.CreateRecordInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *recordServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input record.CreateRecordInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	if mock.GetFunc == nil {
		panic("recordServiceMock.GetFunc: method is nil but recordService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *recordServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordServiceMock) List(ctx context.Context, input record.ListRecordsInput) (*record.ListResult, error) {
	if mock.ListFunc == nil {
		panic("recordServiceMock.ListFunc: method is nil but recordService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input record.ListRecordsInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *recordServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input record.ListRecordsInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordServiceMock) Update(ctx context.Context, input record.UpdateRecordInput) (*domain.Record, error) {
	if mock.UpdateFunc == nil {
		panic("recordServiceMock.UpdateFunc: method is nil but recordService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input record.UpdateRecordInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *recordServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input record.UpdateRecordInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recordServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("recordServiceMock.DeleteFunc: method is nil but recordService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *recordServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordServiceMock) Stats(ctx context.Context, input record.StatsInput) (*domain.RecordStats, error) {
	if mock.StatsFunc == nil {
		panic("recordServiceMock.StatsFunc: method is nil but recordService.Stats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input record.StatsInput
	}{Ctx: ctx, Input: input}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, input)
}

func (mock *recordServiceMock) StatsCalls() []struct {
	Ctx   context.Context
	Input record.StatsInput
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

var _ leaderboardService = &leaderboardServiceMock{}

type leaderboardServiceMock struct {
	TopFunc     func(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	MyScoreFunc func(ctx context.Context) (*domain.Score, error)

	calls struct {
		Top []struct {
			Ctx   context.Context
			Limit int
		}
		MyScore []struct {
			Ctx context.Context
		}
	}
	lockTop     sync.RWMutex
	lockMyScore sync.RWMutex
}

func (mock *leaderboardServiceMock) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if mock.TopFunc == nil {
		panic("leaderboardServiceMock.TopFunc: method is nil but leaderboardService.Top was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockTop.Lock()
	mock.calls.Top = append(mock.calls.Top, callInfo)
	mock.lockTop.Unlock()
	return mock.TopFunc(ctx, limit)
}

func (mock *leaderboardServiceMock) TopCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockTop.RLock()
	calls := mock.calls.Top
	mock.lockTop.RUnlock()
	return calls
}

func (mock *leaderboardServiceMock) MyScore(ctx context.Context) (*domain.Score, error) {
	if mock.MyScoreFunc == nil {
		panic("leaderboardServiceMock.MyScoreFunc: method is nil but leaderboardService.MyScore was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMyScore.Lock()
	mock.calls.MyScore = append(mock.calls.MyScore, callInfo)
	mock.lockMyScore.Unlock()
	return mock.MyScoreFunc(ctx)
}

func (mock *leaderboardServiceMock) MyScoreCalls() []struct {
	Ctx context.Context
} {
	mock.lockMyScore.RLock()
	calls := mock.calls.MyScore
	mock.lockMyScore.RUnlock()
	return calls
}
