package hybridstore

import (
	"context"
	"time"

	"github.com/aligent/hybridstore/cache"
	c "github.com/aligent/hybridstore/codec"
	"github.com/aligent/hybridstore/durable"
)

const (
	// MaxTTL is the longest expiry the fast tier permits for a single entry.
	MaxTTL = 365 * 24 * time.Hour

	// DefaultTTL applies when Options.TTL is zero. Entries without an explicit
	// TTL live as long as the fast tier allows.
	DefaultTTL = MaxTTL

	// DefaultMaxCacheableBytes is the fast tier per-entry size cap. Serialized
	// values above it are stored durable-only and never become cache-resident.
	DefaultMaxCacheableBytes = 1 << 20
)

// Client is the per-key storage facade over both tiers.
// All methods are safe for concurrent use; each call is self-contained.
type Client[V any] interface {
	// Put persists value on the durable tier, then mirrors it into the fast
	// tier when the serialized payload fits the entry limit.
	Put(ctx context.Context, value V) error

	// Get returns the stored value. ok=false means the key is absent from
	// both tiers; that is not an error.
	Get(ctx context.Context) (v V, ok bool, err error)

	// Exists reports whether Get would return a value.
	Exists(ctx context.Context) (bool, error)

	// Delete removes the entry from both tiers. Idempotent: deleting an
	// absent key succeeds.
	Delete(ctx context.Context) error
}

// Options configure a single storage client. A client binds to exactly one
// key for its lifetime; construct another client for another key. Tier
// handles are shared across clients and owned by the caller.
type Options[V any] struct {
	// Required
	Key     string        // caller-supplied identifier; encoded for the fast tier
	Cache   cache.Store   // fast tier handle
	Durable durable.Store // durable tier handle
	Codec   c.Codec[V]    // serialization strategy (codec.String, codec.JSON[T], ...)

	// DurableKey addresses the durable tier when it differs from Key, e.g. a
	// document ID while the cache entry lives under the user key. "" => Key.
	DurableKey string

	TTL               time.Duration // fast tier expiry; 0 => DefaultTTL; capped at MaxTTL
	MaxCacheableBytes int           // fast tier entry limit; 0 => 1 MiB
	Logger            Logger        // nil => NopLogger
	Hooks             Hooks         // nil => NopHooks
}

// New validates opts and returns a client. Key encoding limits and TTL bounds
// are enforced here, before any tier I/O can happen.
func New[V any](opts Options[V]) (Client[V], error) {
	return newClient(opts)
}
