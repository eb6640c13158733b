// Package cache stores serialized enumeration results keyed by graph content.
//
// Enumeration is exponential in graph size, so repeated runs on the same graph
// are answered from the cache. The cache is a transparent speed-up: every
// backend failure is reported to the caller, who logs it and recomputes.
//
// # Backends
//
//   - [NullCache]: stores nothing (--no-cache, backend = "none")
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for several machines (backend = "redis")
//
// # Keys
//
// A [Keyer] maps a graph hash to a cache key. [DefaultKeyer] produces
// "result:<sha256>" keys; [ScopedKeyer] adds a prefix, which the CLI uses to
// separate entries written by different builds.
package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLResult is the default lifetime of a cached enumeration result.
const TTLResult = 7 * 24 * time.Hour

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (hit == false) and not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// ResultKey returns the key for the enumeration result of the graph
	// whose canonical serialization hashes to graphHash.
	ResultKey(graphHash string) string
}

// resultVersion is bumped whenever the cached result encoding changes.
const resultVersion = 1

// DefaultKeyer generates content-addressed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements Keyer. Keys read result:v<version>:<graphHash>.
func (DefaultKeyer) ResultKey(graphHash string) string {
	return fmt.Sprintf("result:v%d:%s", resultVersion, graphHash)
}
