// Package cache provides the stores that hold the rendered assistant
// context between chat requests.
package cache

import (
	"context"
	"io"

	"github.com/dicky/portfolio/internal/application/portfolio"
	"github.com/dicky/portfolio/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewContextCache returns a Redis-backed cache when Redis is configured and
// reachable, and an in-memory cache otherwise. The returned closer releases
// the Redis connection and is never nil.
func NewContextCache(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (portfolio.ContextCache, io.Closer) {
	if !cfg.Enabled() {
		logger.Info("Redis not configured, using in-memory context cache")
		return NewInMemoryContextCache(), nopCloser{}
	}

	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory context cache",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewInMemoryContextCache(), nopCloser{}
	}

	logger.Info("Using Redis context cache", zap.String("addr", cfg.Addr()))
	c := NewRedisContextCache(client, "")
	return c, c
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
