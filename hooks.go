package hybridstore

// Hooks are lightweight callbacks for high-signal storage events.
// Implementations MUST be cheap and non-blocking; the client calls them on
// hot paths. Wrap with hooks/async to decouple slow sinks.
type Hooks interface {
	// A serialized value exceeded the fast tier entry limit and was stored
	// durable-only.
	CacheBypassed(storageKey string, size int)

	// A durable read repopulated the fast tier after a cache miss.
	SelfHealed(storageKey string)

	// Fast tier returned ok=false on Set (admission/backpressure).
	CacheSetRejected(storageKey string)

	// Delete failed on one or both tiers (likely backend outage).
	DeleteOutage(key string, cacheErr, durableErr error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CacheBypassed(string, int)         {}
func (NopHooks) SelfHealed(string)                 {}
func (NopHooks) CacheSetRejected(string)           {}
func (NopHooks) DeleteOutage(string, error, error) {}
