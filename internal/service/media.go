package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// MediaUploadInput — запрос presigned URL для загрузки файла.
type MediaUploadInput struct {
	UserID        int64
	Kind          models.MediaKind
	ContentType   string
	ContentLength int64
}

// MediaUploadURL выдаёт presigned PUT URL для загрузки медиа.
//
// Ошибки:
//   - ErrMediaDisabled, если S3 не сконфигурирован;
//   - ErrInvalidArgument при неверных kind/типе/размере;
//   - иные ошибки -> ErrInternal.
func (s *Service) MediaUploadURL(ctx context.Context, input MediaUploadInput) (*storage.UploadInfo, error) {
	const op = "service/media/MediaUploadURL"
	lg := s.logger(ctx, op, "user_id", input.UserID, "kind", string(input.Kind))

	if s.media == nil {
		lg.Warn("media storage is not configured")

		return nil, fmt.Errorf("%s: %w", op, ErrMediaDisabled)
	}

	if input.UserID <= 0 || !input.Kind.Valid() {
		lg.Warn("invalid argument: user_id or kind")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.media.UploadURL(ctx, input.UserID, input.Kind, strings.TrimSpace(input.ContentType), input.ContentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			lg.Warn("invalid upload request", "content_type", input.ContentType, "content_length", input.ContentLength)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("media error on UploadURL", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return info, nil
}

// ConfirmAvatarUpload проверяет загруженный объект и сохраняет его URL как аватар.
//
// Ошибки:
//   - ErrMediaDisabled; ErrInvalidArgument (чужой ключ, тип, размер);
//   - ErrMediaNotFound, если объекта нет; ErrUserNotFound; ErrInternal.
func (s *Service) ConfirmAvatarUpload(ctx context.Context, userID int64, key string) (*models.User, error) {
	const op = "service/media/ConfirmAvatarUpload"
	lg := s.logger(ctx, op, "user_id", userID)

	if s.media == nil {
		lg.Warn("media storage is not configured")

		return nil, fmt.Errorf("%s: %w", op, ErrMediaDisabled)
	}

	key = strings.TrimSpace(key)
	if userID <= 0 || key == "" {
		lg.Warn("invalid argument: user_id or key")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	url, err := s.media.CheckUpload(ctx, userID, models.MediaAvatar, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid avatar object", "key", key)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrNotFoundObject):
			lg.Warn("avatar object not found", "key", key)

			return nil, fmt.Errorf("%s: %w", op, ErrMediaNotFound)
		default:
			lg.Error("media error on CheckUpload", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	user, err := s.storage.UpdateUser(ctx, userID, storage.UserUpdate{AvatarURL: &url})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		lg.Error("storage error on UpdateUser", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return user, nil
}
