package minio

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
	"github.com/samber/lo"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"video/mp4":  ".mp4",
}

// UploadURL генерирует presigned PUT URL.
// Валидирует kind, contentType и contentLength согласно конфигу, формирует ключ вида
// "<kind>/<userID>/<uuid>.<ext>" и возвращает заголовки, которые клиент должен передать при PUT.
func (s *MediaStorage) UploadURL(ctx context.Context, userID int64, kind models.MediaKind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/media/UploadURL"

	if !kind.Valid() {
		return nil, fmt.Errorf("%s: kind %q: %w", op, kind, storage.ErrInvalidArgument)
	}

	if contentLength <= 0 || contentLength > s.media.MaxSizeBytes {
		return nil, fmt.Errorf("%s: size %d: %w", op, contentLength, storage.ErrInvalidArgument)
	}

	if !lo.Contains(s.media.AllowedContentTypes, contentType) {
		return nil, fmt.Errorf("%s: content type %q: %w", op, contentType, storage.ErrInvalidArgument)
	}

	key := path.Join(keyPrefix(userID, kind), uuid.NewString()+extByContentType[contentType])

	u, err := s.client.PresignedPutObject(ctx, s.s3.Bucket, key, s.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.s3.PresignTTL,
		RequiredHeaders: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// CheckUpload подтверждает факт загрузки по key: ключ принадлежит пользователю и kind,
// объект существует и удовлетворяет ограничениям размера/типа.
// Возвращает публичный URL, если PublicBaseURL задан, иначе сам key.
func (s *MediaStorage) CheckUpload(ctx context.Context, userID int64, kind models.MediaKind, key string) (string, error) {
	const op = "storage/minio/media/CheckUpload"

	if !kind.Valid() || !strings.HasPrefix(key, keyPrefix(userID, kind)+"/") {
		return "", fmt.Errorf("%s: key %q: %w", op, key, storage.ErrInvalidArgument)
	}

	info, err := s.client.StatObject(ctx, s.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		resp := mclient.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFoundObject)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > s.media.MaxSizeBytes {
		return "", fmt.Errorf("%s: size %d: %w", op, info.Size, storage.ErrInvalidArgument)
	}

	if ct := info.ContentType; ct != "" && !lo.Contains(s.media.AllowedContentTypes, ct) {
		return "", fmt.Errorf("%s: content type %q: %w", op, ct, storage.ErrInvalidArgument)
	}

	return publicURL(s.s3.PublicBaseURL, key), nil
}

func keyPrefix(userID int64, kind models.MediaKind) string {
	return string(kind) + "/" + strconv.FormatInt(userID, 10)
}

func publicURL(base, key string) string {
	if base == "" {
		return key
	}

	return strings.TrimRight(base, "/") + "/" + key
}
