// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations. The enrichment engine
// uses it to memoize page metadata between runs; a nil cache disables
// memoization without changing behaviour.
type Cache interface {
	// Get retrieves a value from the cache by key. A miss returns
	// (nil, nil) or an error depending on the implementation; callers
	// treat both the same way.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A ttl of 0 stores the value
	// indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key. Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
