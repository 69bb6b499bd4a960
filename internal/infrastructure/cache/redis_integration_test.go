//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newRedisCache starts a throwaway Redis container and returns a cache on it
func newRedisCache(t *testing.T) *RedisContextCache {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, config.RedisConfig{Host: host, Port: port.Int()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisContextCache(client, "")
}

func TestRedisContextCache_Integration(t *testing.T) {
	c := newRedisCache(t)
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "context", time.Minute))
		got, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "context", got)

		ttl, err := c.client.TTL(ctx, DefaultContextKey).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("zero ttl stores nothing", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "context", time.Minute))
		require.NoError(t, c.Set(ctx, "other", 0))
		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "context", time.Minute))
		require.NoError(t, c.Delete(ctx))
		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, c.Delete(ctx), "deleting a missing key is not an error")
	})

	t.Run("expires", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "context", time.Second))
		assert.Eventually(t, func() bool {
			_, ok, err := c.Get(ctx)
			return err == nil && !ok
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, c.Ping(ctx))
	})
}
