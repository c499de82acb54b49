package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют встроенные миграции через Storage.Migrate (повторный вызов — no-op);
// — пользователей создают прямым INSERT (сервис пользователей не создаёт);
// — проверяют посты, комментарии, лайки, подписки, пользователей и маппинг ошибок.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// startPostgres — поднимает PostgreSQL, применяет миграции и возвращает хранилище.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) *Storage {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	st, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	require.NoError(t, st.Migrate())
	require.NoError(t, st.Migrate(), "повторный Migrate должен быть no-op")

	return st
}

// createUser — вставляет пользователя напрямую и возвращает его id.
func createUser(t *testing.T, st *Storage, username string) int64 {
	t.Helper()

	var id int64
	err := st.db.QueryRow(context.Background(), `
	INSERT INTO users (username, email, display_name)
	VALUES ($1, $2, $3) RETURNING id`,
		username, username+"@example.com", "Display "+username,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// createPost — создаёт активный пост с включёнными комментариями.
func createPost(t *testing.T, st *Storage, ownerID int64, content string) *models.Post {
	t.Helper()

	p, err := st.CreatePost(context.Background(), &models.Post{UserID: ownerID, Content: content, CommentsEnabled: true})
	require.NoError(t, err)

	return p
}

func ptr[T any](v T) *T { return &v }

func page(offset, limit int32) models.PageParams {
	return models.PageParams{Offset: offset, Limit: limit}
}

func TestIntegration_Ping(t *testing.T) {
	st := startPostgres(t)
	require.NoError(t, st.Ping(context.Background()))
}

func TestIntegration_ContextDeadlineExceeded(t *testing.T) {
	st := startPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := st.PostByID(ctx, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
