// Package cache provides the response cache used by the fetch layer.
//
// # Overview
//
// A [Cache] maps a key (normally the request URL, see [Keyer]) to the raw
// bytes of a JSON response. The fetch layer consults it before every request
// so identical resources are fetched at most once per cache lifetime.
//
// Backends:
//
//   - [MemoryCache]: unbounded in-process map, lives as long as the value (default)
//   - [FileCache]: one file per entry, survives between CLI runs
//   - [RedisCache]: shared cache for several server instances
//   - [MongoCache]: document-store backend
//   - [NullCache]: stores nothing, every lookup is a miss
//
// A cache is always constructed explicitly and injected; there is no package
// level instance. Tests create their own and get full isolation.
//
// # Expiry
//
// Entries carry an optional TTL. A TTL of 0 means the entry never expires,
// which is the default: the upstream catalog is static within a session.
// None of the backends evict entries on their own.
package cache

import (
	"context"
	"time"
)

// Cache stores raw response bodies by key.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// HTTPKey returns the key for a response fetched from url within namespace.
	HTTPKey(namespace, url string) string
}

// DefaultKeyer produces keys of the form "http:<namespace>:<url>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// HTTPKey implements Keyer.
func (DefaultKeyer) HTTPKey(namespace, url string) string {
	return "http:" + namespace + ":" + url
}
