package user

import (
	"context"
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashPasswordFunc func(password string) (string, error)

	calls struct {
		HashPassword []struct {
			Password string
		}
	}
	lockHashPassword sync.RWMutex
}

func (mock *passwordHasherMock) HashPassword(password string) (string, error) {
	if mock.HashPasswordFunc == nil {
		panic("passwordHasherMock.HashPasswordFunc: method is nil but passwordHasher.HashPassword was just called")
	}
	callInfo := struct {
		Password string
	}{Password: password}
	mock.lockHashPassword.Lock()
	mock.calls.HashPassword = append(mock.calls.HashPassword, callInfo)
	mock.lockHashPassword.Unlock()
	return mock.HashPasswordFunc(password)
}

func (mock *passwordHasherMock) HashPasswordCalls() []struct {
	Password string
} {
	mock.lockHashPassword.RLock()
	calls := mock.calls.HashPassword
	mock.lockHashPassword.RUnlock()
	return calls
}

var _ avatarStore = &avatarStoreMock{}

type avatarStoreMock struct {
	SaveFunc   func(ctx context.Context, name string, data []byte) (string, error)
	RemoveFunc func(ctx context.Context, url string) error

	calls struct {
		Save []struct {
			Ctx  context.Context
			Name string
			Data []byte
		}
		Remove []struct {
			Ctx context.Context
			URL string
		}
	}
	lockSave   sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *avatarStoreMock) Save(ctx context.Context, name string, data []byte) (string, error) {
	if mock.SaveFunc == nil {
		panic("avatarStoreMock.SaveFunc: method is nil but avatarStore.Save was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Data []byte
	}{Ctx: ctx, Name: name, Data: data}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, name, data)
}

func (mock *avatarStoreMock) SaveCalls() []struct {
	Ctx  context.Context
	Name string
	Data []byte
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *avatarStoreMock) Remove(ctx context.Context, url string) error {
	if mock.RemoveFunc == nil {
		panic("avatarStoreMock.RemoveFunc: method is nil but avatarStore.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		URL string
	}{Ctx: ctx, URL: url}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, url)
}

func (mock *avatarStoreMock) RemoveCalls() []struct {
	Ctx context.Context
	URL string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
