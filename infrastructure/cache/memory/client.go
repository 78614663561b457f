// ABOUTME: In-memory cache implementation using go-cache with TTL support
// ABOUTME: Backs the enrichment metadata memo between pipeline runs

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements the Cache interface using in-process storage
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance. defaultTTL applies
// when Set is called with a zero TTL.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

// Get retrieves a value from the cache. A miss returns (nil, nil).
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := c.store.Get(key)
	if !ok {
		return nil, nil
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, nil
	}

	// Return a copy so callers cannot mutate the cached bytes.
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	data := make([]byte, len(value))
	copy(data, value)

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, data, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}
