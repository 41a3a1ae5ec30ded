package cache

import (
	"context"
	"time"
)

// Cache is the contract for the best-effort local cache layer.
// Implementations may be Redis, Memcached or in-memory; callers must
// treat every failure as non-fatal.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL. ttl = 0 means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
