package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

// DefaultMaxAvatarBytes caps avatar uploads when no limit is configured.
const DefaultMaxAvatarBytes = 5 << 20

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error)
}

// passwordHasher hashes new passwords on profile update.
type passwordHasher interface {
	HashPassword(password string) (string, error)
}

// avatarStore persists avatar images and returns their public URL.
type avatarStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Remove(ctx context.Context, url string) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile and avatar operations.
type Service struct {
	log            *slog.Logger
	users          userRepo
	hasher         passwordHasher
	avatars        avatarStore
	tx             txManager
	maxAvatarBytes int64
}

// NewService creates a new user service instance. A non-positive
// maxAvatarBytes selects DefaultMaxAvatarBytes.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	avatars avatarStore,
	tx txManager,
	maxAvatarBytes int64,
) *Service {
	if maxAvatarBytes <= 0 {
		maxAvatarBytes = DefaultMaxAvatarBytes
	}
	return &Service{
		log:            logger.With("service", "user"),
		users:          users,
		hasher:         hasher,
		avatars:        avatars,
		tx:             tx,
		maxAvatarBytes: maxAvatarBytes,
	}
}

// MaxAvatarBytes returns the largest accepted avatar upload.
func (s *Service) MaxAvatarBytes() int64 { return s.maxAvatarBytes }
