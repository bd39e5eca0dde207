package hybridstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aligent/hybridstore/cache"
	c "github.com/aligent/hybridstore/codec"
	"github.com/aligent/hybridstore/durable"
	"github.com/aligent/hybridstore/internal/keys"
)

type client[V any] struct {
	key          string
	encodedKey   string
	durableKey   string
	cache        cache.Store
	durable      durable.Store
	codec        c.Codec[V]
	log          Logger
	hooks        Hooks
	ttl          time.Duration
	maxCacheable int
}

func newClient[V any](opts Options[V]) (*client[V], error) {
	if opts.Key == "" {
		return nil, fmt.Errorf("hybridstore: key is required")
	}
	if opts.Cache == nil {
		return nil, fmt.Errorf("hybridstore: cache store is required")
	}
	if opts.Durable == nil {
		return nil, fmt.Errorf("hybridstore: durable store is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("hybridstore: codec is required")
	}

	enc := keys.Encode(opts.Key)
	if len(enc) > keys.MaxEncodedLen {
		return nil, &KeySizeError{Key: opts.Key, EncodedLen: len(enc)}
	}

	ttl := coalesce(opts.TTL, DefaultTTL)
	if ttl < 0 || ttl > MaxTTL {
		return nil, fmt.Errorf("hybridstore: ttl %v outside fast tier bounds (0, %v]", opts.TTL, MaxTTL)
	}

	cl := &client[V]{
		key:        opts.Key,
		encodedKey: enc,
		durableKey: coalesce(opts.DurableKey, opts.Key),
		cache:      opts.Cache,
		durable:    opts.Durable,
		codec:      opts.Codec,
		ttl:        ttl,
	}
	cl.log = opts.Logger
	if cl.log == nil {
		cl.log = NopLogger{}
	}
	cl.hooks = opts.Hooks
	if cl.hooks == nil {
		cl.hooks = NopHooks{}
	}
	cl.maxCacheable = coalesce(opts.MaxCacheableBytes, DefaultMaxCacheableBytes)
	return cl, nil
}

// Put writes durable-before-fast: the durable copy is persisted before any
// fast tier interaction, so a crash mid-sequence never loses the value.
func (cl *client[V]) Put(ctx context.Context, value V) error {
	payload, err := cl.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("hybridstore: encode %q: %w", cl.key, err)
	}

	if err := cl.durable.Write(ctx, cl.durableKey, payload); err != nil {
		cl.log.Error("durable write failed", Fields{"op": "put", "key": cl.key, "err": err})
		return err
	}

	if len(payload) > cl.maxCacheable {
		cl.log.Warn("value exceeds fast tier entry limit; stored durable-only",
			Fields{"key": cl.key, "size": len(payload), "limit": cl.maxCacheable})
		cl.hooks.CacheBypassed(cl.encodedKey, len(payload))
		return nil
	}

	ok, err := cl.cache.Set(ctx, cl.encodedKey, payload, cl.ttl)
	if err != nil {
		// The durable copy already landed; the caller still sees a failed Put.
		cl.log.Error("fast tier write failed", Fields{"op": "put", "key": cl.key, "err": err})
		return err
	}
	if !ok {
		cl.log.Debug("fast tier rejected write (pressure)", Fields{"key": cl.key})
		cl.hooks.CacheSetRejected(cl.encodedKey)
	}
	return nil
}

// Get reads fast-before-durable. A fast tier miss (absence and TTL expiry are
// indistinguishable) falls through to the durable tier; a durable hit within
// the entry limit repopulates the cache before returning.
func (cl *client[V]) Get(ctx context.Context) (V, bool, error) {
	var zero V

	raw, ok, err := cl.cache.Get(ctx, cl.encodedKey)
	if err != nil {
		cl.log.Error("fast tier read failed", Fields{"op": "get", "key": cl.key, "err": err})
		return zero, false, err
	}
	if ok {
		v, derr := cl.codec.Decode(raw)
		if derr == nil {
			return v, true, nil
		}
		// undecodable cache entry: drop it and fall through to the durable tier
		_ = cl.cache.Del(ctx, cl.encodedKey)
		cl.log.Warn("dropped undecodable fast tier entry", Fields{"key": cl.key, "err": derr})
	}

	payload, found, err := cl.durable.Read(ctx, cl.durableKey)
	if err != nil {
		cl.log.Error("durable read failed", Fields{"op": "get", "key": cl.key, "err": err})
		return zero, false, err
	}
	if !found {
		return zero, false, nil
	}

	if len(payload) <= cl.maxCacheable {
		ok, serr := cl.cache.Set(ctx, cl.encodedKey, payload, cl.ttl)
		if serr != nil {
			cl.log.Error("fast tier repopulation failed", Fields{"op": "get", "key": cl.key, "err": serr})
			return zero, false, serr
		}
		if ok {
			cl.hooks.SelfHealed(cl.encodedKey)
		} else {
			cl.hooks.CacheSetRejected(cl.encodedKey)
		}
	}

	v, err := cl.codec.Decode(payload)
	if err != nil {
		return zero, false, fmt.Errorf("hybridstore: decode %q: %w", cl.key, err)
	}
	return v, true, nil
}

func (cl *client[V]) Exists(ctx context.Context) (bool, error) {
	// Delegation transfers the value just to discard it; acceptable at
	// current scale and keeps the tier protocol in one place.
	_, ok, err := cl.Get(ctx)
	return ok, err
}

// Delete attempts both tiers regardless of whether either attempt fails.
func (cl *client[V]) Delete(ctx context.Context) error {
	cacheErr := cl.cache.Del(ctx, cl.encodedKey)
	durableErr := cl.durable.Delete(ctx, cl.durableKey)
	if cacheErr == nil && durableErr == nil {
		return nil
	}
	cl.log.Error("delete failed", Fields{
		"op": "delete", "key": cl.key, "cache_err": cacheErr, "durable_err": durableErr,
	})
	cl.hooks.DeleteOutage(cl.key, cacheErr, durableErr)
	return &DeleteError{Key: cl.key, CacheErr: cacheErr, DurableErr: durableErr}
}
