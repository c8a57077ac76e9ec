package record

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

var _ scoreLedger = &scoreLedgerMock{}

type scoreLedgerMock struct {
	IncrementFunc func(ctx context.Context, userID uuid.UUID, deltaXP int64) (*domain.Score, error)

	calls struct {
		Increment []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			DeltaXP int64
		}
	}
	lockIncrement sync.RWMutex
}

func (mock *scoreLedgerMock) Increment(ctx context.Context, userID uuid.UUID, deltaXP int64) (*domain.Score, error) {
	if mock.IncrementFunc == nil {
		panic("scoreLedgerMock.IncrementFunc: method is nil but scoreLedger.Increment was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		DeltaXP int64
	}{Ctx: ctx, UserID: userID, DeltaXP: deltaXP}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, userID, deltaXP)
}

func (mock *scoreLedgerMock) IncrementCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	DeltaXP int64
} {
	mock.lockIncrement.RLock()
	calls := mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}
