package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// DefaultContextKey is the Redis key holding the assistant context
const DefaultContextKey = "portfolio:assistant:context"

// RedisContextCache stores the assistant context in Redis so every
// instance shares one copy and writes on any instance invalidate it
type RedisContextCache struct {
	client *redis.Client
	key    string
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisContextCache creates a cache over an existing client. An empty key
// selects DefaultContextKey.
func NewRedisContextCache(client *redis.Client, key string) *RedisContextCache {
	if key == "" {
		key = DefaultContextKey
	}
	return &RedisContextCache{client: client, key: key}
}

// Get returns the cached context
func (c *RedisContextCache) Get(ctx context.Context) (string, bool, error) {
	value, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read context cache: %w", err)
	}
	return value, true, nil
}

// Set stores the context for ttl. A non-positive ttl stores nothing and
// drops any previous value, matching InMemoryContextCache.
func (c *RedisContextCache) Set(ctx context.Context, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return c.Delete(ctx)
	}
	if err := c.client.Set(ctx, c.key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write context cache: %w", err)
	}
	return nil
}

// Delete removes the cached context
func (c *RedisContextCache) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to delete context cache: %w", err)
	}
	return nil
}

// Ping checks the connection for the health endpoint
func (c *RedisContextCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (c *RedisContextCache) Close() error {
	return c.client.Close()
}
