package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studytrack-backend/internal/adapter/provider/weather"
)

var _ weatherProvider = &weatherProviderMock{}

type weatherProviderMock struct {
	CurrentFunc func(ctx context.Context, q weather.Query) (*weather.Report, error)

	calls struct {
		Current []struct {
			Ctx context.Context
			Q   weather.Query
		}
	}
	lockCurrent sync.RWMutex
}

func (mock *weatherProviderMock) Current(ctx context.Context, q weather.Query) (*weather.Report, error) {
	if mock.CurrentFunc == nil {
		panic("weatherProviderMock.CurrentFunc: method is nil but weatherProvider.Current was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   weather.Query
	}{Ctx: ctx, Q: q}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx, q)
}

func (mock *weatherProviderMock) CurrentCalls() []struct {
	Ctx context.Context
	Q   weather.Query
} {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}
