package tui

import (
	"context"
	"sync"

	"github.com/heartmarshall/studytrack-backend/internal/client"
)

var _ recordSubmitter = &recordSubmitterMock{}

type recordSubmitterMock struct {
	CreateRecordFunc func(ctx context.Context, in client.NewRecord) (*client.CreatedRecord, error)

	calls struct {
		CreateRecord []struct {
			Ctx context.Context
			In  client.NewRecord
		}
	}
	lockCreateRecord sync.RWMutex
}

func (mock *recordSubmitterMock) CreateRecord(ctx context.Context, in client.NewRecord) (*client.CreatedRecord, error) {
	if mock.CreateRecordFunc == nil {
		panic("recordSubmitterMock.CreateRecordFunc: method is nil but recordSubmitter.CreateRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  client.NewRecord
	}{Ctx: ctx, In: in}
	mock.lockCreateRecord.Lock()
	mock.calls.CreateRecord = append(mock.calls.CreateRecord, callInfo)
	mock.lockCreateRecord.Unlock()
	return mock.CreateRecordFunc(ctx, in)
}

func (mock *recordSubmitterMock) CreateRecordCalls() []struct {
	Ctx context.Context
	In  client.NewRecord
} {
	mock.lockCreateRecord.RLock()
	calls := mock.calls.CreateRecord
	mock.lockCreateRecord.RUnlock()
	return calls
}
