package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryContextCache keeps the assistant context in process memory.
// It suits single-instance deployments and tests.
type InMemoryContextCache struct {
	mu        sync.RWMutex
	value     string
	expiresAt time.Time
	present   bool
	now       func() time.Time
}

// NewInMemoryContextCache creates an empty cache
func NewInMemoryContextCache() *InMemoryContextCache {
	return &InMemoryContextCache{now: time.Now}
}

// Get returns the context unless it is missing or expired
func (c *InMemoryContextCache) Get(_ context.Context) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.present || !c.now().Before(c.expiresAt) {
		return "", false, nil
	}
	return c.value, true, nil
}

// Set stores the context for ttl. A non-positive ttl stores nothing.
func (c *InMemoryContextCache) Set(_ context.Context, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		c.present = false
		return nil
	}
	c.value = value
	c.expiresAt = c.now().Add(ttl)
	c.present = true
	return nil
}

// Delete drops the cached context
func (c *InMemoryContextCache) Delete(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = ""
	c.present = false
	return nil
}
