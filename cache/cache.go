// Package cache defines the fast tier abstraction used by hybridstore.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation). Both tiers hold the identical
// serialized payload, and the client's size threshold is evaluated on those
// bytes.
//
// Absence and TTL expiry are indistinguishable through this interface; the
// client treats either as a miss and falls through to the durable tier.
package cache

import (
	"context"
	"time"
)

// Store is a minimal byte store with per-entry TTL.
// Must be safe for concurrent use.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. Returns ok=false when the store
	// rejected the write under pressure; that is not an error.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) (ok bool, err error)

	// Del removes a key. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
