package record

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc            func(ctx context.Context, rec domain.Record) (*domain.Record, error)
	UpdateFunc            func(ctx context.Context, rec domain.Record) (*domain.Record, error)
	DeleteFunc            func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	GetByIDFunc           func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Record, error)
	ListFunc              func(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error)
	SummaryFunc           func(ctx context.Context, userID uuid.UUID) (domain.RecordSummary, error)
	MinutesByCategoryFunc func(ctx context.Context, userID uuid.UUID) ([]domain.CategoryMinutes, error)
	MinutesByDayFunc      func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.DailyMinutes, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.Record
		}
		Update []struct {
			Ctx context.Context
			Rec domain.Record
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.RecordFilter
		}
		Summary []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MinutesByCategory []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MinutesByDay []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockCreate            sync.RWMutex
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockSummary           sync.RWMutex
	lockMinutesByCategory sync.RWMutex
	lockMinutesByDay      sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Update(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *recordRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *recordRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recordRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.RecordFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.RecordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordRepoMock) Summary(ctx context.Context, userID uuid.UUID) (domain.RecordSummary, error) {
	if mock.SummaryFunc == nil {
		panic("recordRepoMock.SummaryFunc: method is nil but recordRepo.Summary was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, userID)
}

func (mock *recordRepoMock) SummaryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *recordRepoMock) MinutesByCategory(ctx context.Context, userID uuid.UUID) ([]domain.CategoryMinutes, error) {
	if mock.MinutesByCategoryFunc == nil {
		panic("recordRepoMock.MinutesByCategoryFunc: method is nil but recordRepo.MinutesByCategory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockMinutesByCategory.Lock()
	mock.calls.MinutesByCategory = append(mock.calls.MinutesByCategory, callInfo)
	mock.lockMinutesByCategory.Unlock()
	return mock.MinutesByCategoryFunc(ctx, userID)
}

func (mock *recordRepoMock) MinutesByCategoryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockMinutesByCategory.RLock()
	calls := mock.calls.MinutesByCategory
	mock.lockMinutesByCategory.RUnlock()
	return calls
}

func (mock *recordRepoMock) MinutesByDay(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.DailyMinutes, error) {
	if mock.MinutesByDayFunc == nil {
		panic("recordRepoMock.MinutesByDayFunc: method is nil but recordRepo.MinutesByDay was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockMinutesByDay.Lock()
	mock.calls.MinutesByDay = append(mock.calls.MinutesByDay, callInfo)
	mock.lockMinutesByDay.Unlock()
	return mock.MinutesByDayFunc(ctx, userID, from, to)
}

func (mock *recordRepoMock) MinutesByDayCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockMinutesByDay.RLock()
	calls := mock.calls.MinutesByDay
	mock.lockMinutesByDay.RUnlock()
	return calls
}
