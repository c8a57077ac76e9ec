package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)
	UpdateAvatarFunc  func(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
			Upd domain.ProfileUpdate
		}
		UpdateAvatar []struct {
			Ctx       context.Context
			ID        uuid.UUID
			AvatarURL string
		}
	}
	lockGetByID       sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockUpdateAvatar  sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Upd domain.ProfileUpdate
	}{Ctx: ctx, ID: id, Upd: upd}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, upd)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Upd domain.ProfileUpdate
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error) {
	if mock.UpdateAvatarFunc == nil {
		panic("userRepoMock.UpdateAvatarFunc: method is nil but userRepo.UpdateAvatar was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		AvatarURL string
	}{Ctx: ctx, ID: id, AvatarURL: avatarURL}
	mock.lockUpdateAvatar.Lock()
	mock.calls.UpdateAvatar = append(mock.calls.UpdateAvatar, callInfo)
	mock.lockUpdateAvatar.Unlock()
	return mock.UpdateAvatarFunc(ctx, id, avatarURL)
}

func (mock *userRepoMock) UpdateAvatarCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	AvatarURL string
} {
	mock.lockUpdateAvatar.RLock()
	calls := mock.calls.UpdateAvatar
	mock.lockUpdateAvatar.RUnlock()
	return calls
}
