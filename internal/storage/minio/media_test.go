package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-social-feed/internal/config"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Тесты пакета minio.
// Юнит-часть: нормализация endpoint, сбор публичного URL, префиксы ключей.
// Интеграционная часть поднимает MinIO через testcontainers-go и проверяет
// New (бакет обязателен), UploadURL (валидации, presigned PUT) и CheckUpload
// (чужой ключ, отсутствующий объект, публичный URL).
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		host   string
		secure bool
	}{
		{"http://localhost:9000", "localhost:9000", false},
		{"https://s3.example.com", "s3.example.com", true},
		{"localhost:9000", "localhost:9000", false},
	}

	for _, c := range cases {
		host, secure := normalizeEndpoint(c.in)
		require.Equal(t, c.host, host, c.in)
		require.Equal(t, c.secure, secure, c.in)
	}
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "avatars/1/x.png", publicURL("", "avatars/1/x.png"))
	require.Equal(t, "http://cdn.local/avatars/1/x.png", publicURL("http://cdn.local/", "avatars/1/x.png"))
	require.Equal(t, "posts/42", keyPrefix(42, models.MediaPost))
}

const (
	minioUser     = "root"
	minioPassword = "rootpass"
	minioBucket   = "media"
)

func startMinio(t *testing.T, createBucket bool) (config.S3Config, config.MediaConfig) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image: "docker.io/minio/minio:latest",
		Env: map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioPassword,
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds: credentials.NewStaticV4(minioUser, minioPassword, ""),
		})
		require.NoError(t, err)
		require.NoError(t, admin.MakeBucket(ctx, minioBucket, mclient.MakeBucketOptions{Region: "us-east-1"}))
	}

	s3 := config.S3Config{
		Endpoint:      fmt.Sprintf("http://%s:%s", host, port.Port()),
		RootUser:      minioUser,
		RootPassword:  minioPassword,
		Bucket:        minioBucket,
		PresignTTL:    2 * time.Minute,
		PublicBaseURL: "http://cdn.local",
	}
	media := config.MediaConfig{
		MaxSizeBytes:        1 << 20,
		AllowedContentTypes: []string{"image/png", "image/jpeg"},
	}

	return s3, media
}

func put(t *testing.T, info *storage.UploadInfo, body []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPut, info.UploadURL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", info.RequiredHeaders["Content-Type"])
	req.ContentLength = int64(len(body))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Less(t, resp.StatusCode, 300, "PUT must succeed")
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	s3, media := startMinio(t, false)

	_, err := New(context.Background(), s3, media)
	require.Error(t, err)
}

func TestIntegration_UploadURL_And_CheckUpload_OK(t *testing.T) {
	s3, media := startMinio(t, true)
	st, err := New(context.Background(), s3, media)
	require.NoError(t, err)

	const size = 5
	info, err := st.UploadURL(context.Background(), 7, models.MediaAvatar, "image/png", size)
	require.NoError(t, err)
	require.Contains(t, info.Key, "avatars/7/")
	require.Equal(t, strconv.Itoa(size), info.RequiredHeaders["Content-Length"])

	put(t, info, bytes.Repeat([]byte{0x42}, size))

	url, err := st.CheckUpload(context.Background(), 7, models.MediaAvatar, info.Key)
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/"+info.Key, url)
}

func TestIntegration_UploadURL_InvalidArgs(t *testing.T) {
	s3, media := startMinio(t, true)
	st, err := New(context.Background(), s3, media)
	require.NoError(t, err)

	_, err = st.UploadURL(context.Background(), 1, models.MediaPost, "image/gif", 10)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.UploadURL(context.Background(), 1, models.MediaPost, "image/png", 0)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.UploadURL(context.Background(), 1, models.MediaKind("docs"), "image/png", 10)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_CheckUpload_Errors(t *testing.T) {
	s3, media := startMinio(t, true)
	st, err := New(context.Background(), s3, media)
	require.NoError(t, err)

	_, err = st.CheckUpload(context.Background(), 1, models.MediaAvatar, "avatars/2/x.png")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.CheckUpload(context.Background(), 1, models.MediaAvatar, "posts/1/x.png")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.CheckUpload(context.Background(), 1, models.MediaAvatar, "avatars/1/missing.png")
	require.ErrorIs(t, err, storage.ErrNotFoundObject)
}
