// Package cache stores geocoding service responses keyed by a digest of the
// canonical request, with a TTL. Two backends: SQLite for local use,
// Postgres for shared use.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"time"
)

// Store is a keyed response cache.
type Store interface {
	// Get returns the cached response body for key, and whether a live
	// (unexpired) entry was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the response body under key with the store's TTL.
	Set(ctx context.Context, key string, body []byte) error

	// Purge removes expired entries and returns the number removed.
	Purge(ctx context.Context) (int64, error)

	Close() error
}

// Key derives a cache key from a request path and its canonical query
// parameters. url.Values.Encode sorts keys, so equivalent requests produce
// the same digest.
func Key(path string, params url.Values) string {
	sum := sha256.Sum256([]byte(path + "?" + params.Encode()))
	return hex.EncodeToString(sum[:])
}

// DefaultTTL is how long cached responses stay live unless configured
// otherwise.
const DefaultTTL = 24 * time.Hour
