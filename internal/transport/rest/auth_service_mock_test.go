package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/internal/service/auth"
	"github.com/heartmarshall/studytrack-backend/internal/service/user"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	MeFunc             func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	UpdateAvatarFunc   func(ctx context.Context, input user.UploadAvatarInput) (*domain.User, error)
	MaxAvatarBytesFunc func() int64

	calls struct {
		Me []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		UpdateAvatar []struct {
			Ctx   context.Context
			Input user.UploadAvatarInput
		}
		MaxAvatarBytes []struct{}
	}
	lockMe             sync.RWMutex
	lockUpdateProfile  sync.RWMutex
	lockUpdateAvatar   sync.RWMutex
	lockMaxAvatarBytes sync.RWMutex
}

func (mock *profileServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("profileServiceMock.MeFunc: method is nil but profileService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *profileServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateAvatar(ctx context.Context, input user.UploadAvatarInput) (*domain.User, error) {
	if mock.UpdateAvatarFunc == nil {
		panic("profileServiceMock.UpdateAvatarFunc: method is nil but profileService.UpdateAvatar was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UploadAvatarInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateAvatar.Lock()
	mock.calls.UpdateAvatar = append(mock.calls.UpdateAvatar, callInfo)
	mock.lockUpdateAvatar.Unlock()
	return mock.UpdateAvatarFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateAvatarCalls() []struct {
	Ctx   context.Context
	Input user.UploadAvatarInput
} {
	mock.lockUpdateAvatar.RLock()
	calls := mock.calls.UpdateAvatar
	mock.lockUpdateAvatar.RUnlock()
	return calls
}

func (mock *profileServiceMock) MaxAvatarBytes() int64 {
	if mock.MaxAvatarBytesFunc == nil {
		panic("profileServiceMock.MaxAvatarBytesFunc: method is nil but profileService.MaxAvatarBytes was just called")
	}
	callInfo := struct{}{}
	mock.lockMaxAvatarBytes.Lock()
	mock.calls.MaxAvatarBytes = append(mock.calls.MaxAvatarBytes, callInfo)
	mock.lockMaxAvatarBytes.Unlock()
	return mock.MaxAvatarBytesFunc()
}

func (mock *profileServiceMock) MaxAvatarBytesCalls() []struct{} {
	mock.lockMaxAvatarBytes.RLock()
	calls := mock.calls.MaxAvatarBytes
	mock.lockMaxAvatarBytes.RUnlock()
	return calls
}
