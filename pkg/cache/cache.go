// Package cache stores rendered artifacts between runs.
//
// Three backends share the [Cache] interface: [NullCache] disables caching,
// [FileCache] keeps entries on disk for the CLI, and [RedisCache] serves the
// HTTP service. Keys come from a [Keyer] so that callers never build key
// strings by hand.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept. Artifacts are fully
// determined by their key, so the limit only bounds disk and memory use.
const TTLArtifact = 7 * 24 * time.Hour
