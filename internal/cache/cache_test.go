package cache

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

// Интеграционные тесты кеша счётчиков: поднимают redis:7-alpine через testcontainers-go
// и проверяют промах, Set/Get, Invalidate и истечение TTL.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -count=1

func startRedis(t *testing.T, ttl time.Duration) CountsCache {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	cache, err := NewRedisCache(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "", ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache
}

func TestNewRedisCache_RejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "redis://localhost:6379/0", "", 0)
	require.Error(t, err)

	_, err = NewRedisCache(context.Background(), "://bad", "", time.Minute)
	require.Error(t, err)
}

func TestIntegration_SetGetInvalidate(t *testing.T) {
	cache := startRedis(t, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)

	want := &models.ProfileCounts{Following: 3, Followers: 2, Posts: 5}
	require.NoError(t, cache.Set(ctx, 1, want))

	got, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	require.NoError(t, cache.Invalidate(ctx, 1, 2))
	_, ok, err = cache.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Invalidate(ctx))
}

func TestIntegration_TTLExpires(t *testing.T) {
	cache := startRedis(t, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 9, &models.ProfileCounts{Posts: 1}))

	require.Eventually(t, func() bool {
		_, ok, err := cache.Get(ctx, 9)
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}
