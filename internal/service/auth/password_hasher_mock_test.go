package auth

import "sync"

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashPasswordFunc    func(password string) (string, error)
	ComparePasswordFunc func(hash string, password string) error

	calls struct {
		HashPassword []struct {
			Password string
		}
		ComparePassword []struct {
			Hash     string
			Password string
		}
	}
	lockHashPassword    sync.RWMutex
	lockComparePassword sync.RWMutex
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

func (mock *passwordHasherMock) ComparePassword(hash string, password string) error {
	if mock.ComparePasswordFunc == nil {
		panic("passwordHasherMock.ComparePasswordFunc: method is nil but passwordHasher.ComparePassword was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password}
	mock.lockComparePassword.Lock()
	mock.calls.ComparePassword = append(mock.calls.ComparePassword, callInfo)
	mock.lockComparePassword.Unlock()
	return mock.ComparePasswordFunc(hash, password)
}

func (mock *passwordHasherMock) ComparePasswordCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockComparePassword.RLock()
	calls := mock.calls.ComparePassword
	mock.lockComparePassword.RUnlock()
	return calls
}
