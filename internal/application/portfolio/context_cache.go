package portfolio

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ContextCache stores the rendered assistant context
type ContextCache interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, value string, ttl time.Duration) error
	Delete(ctx context.Context) error
}

// ContextBuilder renders the assistant context from the content store
type ContextBuilder interface {
	Build(ctx context.Context) (string, error)
}

// CachedContextSource serves the assistant context from a TTL cache and
// rebuilds it on a miss. Concurrent misses share one rebuild. A failed
// rebuild yields FallbackContext and is not cached.
type CachedContextSource struct {
	builder ContextBuilder
	cache   ContextCache
	ttl     time.Duration
	logger  *zap.Logger
	group   singleflight.Group

	// gen counts invalidations; a rebuild only stores its text if no
	// invalidation happened while it ran
	mu  sync.Mutex
	gen uint64
}

const contextFlightKey = "portfolio-context"

// NewCachedContextSource creates a CachedContextSource
func NewCachedContextSource(builder ContextBuilder, cache ContextCache, ttl time.Duration, logger *zap.Logger) *CachedContextSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedContextSource{builder: builder, cache: cache, ttl: ttl, logger: logger}
}

// PortfolioContext returns the cached context, rebuilding it when missing
func (c *CachedContextSource) PortfolioContext(ctx context.Context) string {
	if text, ok, err := c.cache.Get(ctx); err != nil {
		c.logger.Warn("Context cache read failed", zap.Error(err))
	} else if ok {
		return text
	}

	v, err, _ := c.group.Do(contextFlightKey, func() (any, error) {
		// shared by every waiter, so one caller going away must not fail the rest
		buildCtx := context.WithoutCancel(ctx)
		gen := c.generation()
		text, err := c.builder.Build(buildCtx)
		if err != nil {
			return "", err
		}
		c.store(buildCtx, text, gen)
		return text, nil
	})
	if err != nil {
		c.logger.Error("Failed to build portfolio context", zap.Error(err))
		return FallbackContext
	}
	return v.(string)
}

// Invalidate drops the cached context so the next read rebuilds it.
// Rebuilds already in flight still answer their callers but are not cached.
func (c *CachedContextSource) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()

	c.group.Forget(contextFlightKey)
	return c.cache.Delete(ctx)
}

func (c *CachedContextSource) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// store writes text unless the cache was invalidated after gen was taken.
// The lock is held across Set so an invalidation cannot slip in between the
// check and the write.
func (c *CachedContextSource) store(ctx context.Context, text string, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		c.logger.Debug("Discarding context rebuilt before invalidation")
		return
	}
	if err := c.cache.Set(ctx, text, c.ttl); err != nil {
		c.logger.Warn("Context cache write failed", zap.Error(err))
	}
}
