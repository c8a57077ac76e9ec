package user

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	"github.com/heartmarshall/studytrack-backend/pkg/ctxutil"
)

// avatarExtensions maps accepted sniffed content types to file extensions.
var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UpdateAvatar stores a new avatar image for the authenticated user and
// points the profile at it. The previous avatar file is removed once the
// profile has been updated.
func (s *Service) UpdateAvatar(ctx context.Context, input UploadAvatarInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ext, err := s.checkAvatar(input.Data)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Save(ctx, uuid.NewString()+ext, input.Data)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateAvatar save: %w", err)
	}

	var (
		updated *domain.User
		oldURL  *string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		oldURL = current.AvatarURL

		updated, err = s.users.UpdateAvatar(txCtx, userID, url)
		if err != nil {
			return fmt.Errorf("update avatar: %w", err)
		}
		return nil
	})
	if err != nil {
		s.removeAvatar(ctx, url)
		return nil, fmt.Errorf("user.UpdateAvatar: %w", err)
	}

	if oldURL != nil && *oldURL != url {
		s.removeAvatar(ctx, *oldURL)
	}

	s.log.InfoContext(ctx, "avatar updated",
		slog.String("user_id", userID.String()),
		slog.String("url", url))

	return updated, nil
}

// checkAvatar validates size and sniffed type, returning the file extension.
func (s *Service) checkAvatar(data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.NewValidationError("profile_picture", "required")
	}
	if int64(len(data)) > s.maxAvatarBytes {
		return "", domain.NewValidationError("profile_picture",
			fmt.Sprintf("must be at most %d bytes", s.maxAvatarBytes))
	}

	ext, ok := avatarExtensions[http.DetectContentType(data)]
	if !ok {
		return "", domain.NewValidationError("profile_picture", "must be a JPEG, PNG, GIF or WebP image")
	}
	return ext, nil
}

func (s *Service) removeAvatar(ctx context.Context, url string) {
	if err := s.avatars.Remove(ctx, url); err != nil {
		s.log.WarnContext(ctx, "remove avatar file",
			slog.String("url", url),
			slog.String("error", err.Error()))
	}
}
