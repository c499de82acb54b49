// minio предоставляет реализацию storage.Media на базе MinIO/S3.
// minio.go - конструктор клиента MinIO: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие целевого бакета.
// media.go — presigned PUT и подтверждение загрузки.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-social-feed/internal/config"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// MediaStorage — адаптер MinIO для загрузки медиа (аватары, вложения постов).
type MediaStorage struct {
	s3     config.S3Config
	media  config.MediaConfig
	client *mclient.Client
}

// New создает клиент MinIO и выполняет fail-fast-проверку доступности бакета.
// Endpoint может быть задан со схемой (http/https) или без неё.
func New(ctx context.Context, s3 config.S3Config, media config.MediaConfig) (*MediaStorage, error) {
	const op = "storage/minio/New"

	endpoint, secure := normalizeEndpoint(s3.Endpoint)

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(s3.RootUser, s3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, s3.Bucket)
	}

	return &MediaStorage{s3: s3, media: media, client: client}, nil
}

// normalizeEndpoint убирает схему из endpoint и выводит из неё Secure.
func normalizeEndpoint(endpoint string) (string, bool) {
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		return u.Host, u.Scheme == "https"
	}

	return endpoint, secure
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Media = (*MediaStorage)(nil)
