package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-social-feed/internal/models"
)

var (
	// ErrNotFoundObject — объект (ключ) отсутствует в бакете.
	ErrNotFoundObject = errors.New("object not found")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер/ключ).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: URL для PUT-запроса;
//   - Key: ключ будущего объекта в бакете;
//   - Expires: время жизни подписи;
//   - RequiredHeaders: заголовки, которые клиент обязан передать при PUT.
type UploadInfo struct {
	UploadURL       string
	Key             string
	Expires         time.Duration
	RequiredHeaders map[string]string
}

// Media — контракт генерации presigned URL и подтверждения загрузки.
type Media interface {
	// UploadURL валидирует contentType/contentLength и генерирует presigned PUT
	// для ключа "<kind>/<userID>/<uuid>.<ext>".
	UploadURL(ctx context.Context, userID int64, kind models.MediaKind, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckUpload проверяет, что объект по key загружен этим пользователем и подходит
	// по типу и размеру. Возвращает публичный URL (или key, если публичный адрес не задан).
	CheckUpload(ctx context.Context, userID int64, kind models.MediaKind, key string) (string, error)
}
