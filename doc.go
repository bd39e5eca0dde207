// Package hybridstore implements a two-tier key-value storage client that
// pairs a fast, TTL-bound cache with a slower durable store of unbounded
// lifetime. One client manages exactly one key (or one document) and
// orchestrates both tiers behind a four-method API.
//
// Components:
//   - cache.Store: fast tier byte store with TTL (e.g. Redis, Ristretto, BigCache).
//   - durable.Store: durable tier (e.g. S3 blobs, MongoDB documents, local files).
//   - codec.Codec[V]: (de)serializes V <-> []byte. codec.String yields the
//     plain string client; codec.JSON[T] yields the typed document client.
//   - lazy.Handle[T]: initialize-once container for handles shared across clients.
//
// Protocol:
//
//	Put: durable tier first, then the fast tier - but only when the serialized
//	     payload fits the tier's entry limit (1 MiB). Oversized values stay
//	     durable-only; that is a logged warning, not an error.
//	Get: fast tier first; on miss, read the durable tier and repopulate the
//	     cache on the way out ("self-healing"). Durable not-found is a plain
//	     (zero, false, nil) result.
//
// Partial failure: when the durable write succeeds and the fast tier write
// then fails, Put returns that error even though the value is durably
// persisted. Retrying the Put re-writes both tiers.
//
// No operation retries, and no compare-and-swap is provided: concurrent Puts
// to the same key are last-write-wins on each tier independently.
package hybridstore
