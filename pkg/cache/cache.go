// Package cache stores rendered artifacts, such as dependency graph SVGs,
// keyed by a hash of their input.
//
// Three implementations share the [Cache] interface:
//
//   - [NullCache] stores nothing; used for --no-cache
//   - [FileCache] keeps JSON entries on disk; used by the CLI
//   - [MemoryCache] keeps entries in process memory; used by the server
//
// Keys come from [GraphKey] (or [Key] for other artifacts) and can be
// namespaced with [Scoped]. Every lookup is reported to the cache hooks of
// the observability package.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the entry for key and whether it was found. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Fetch returns the entry for key, computing and storing it on a miss.
// Read and write failures of c fall back to compute; only compute's error is
// returned.
func Fetch(ctx context.Context, c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, nil
	}
	data, err := compute()
	if err != nil {
		return nil, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, nil
}
