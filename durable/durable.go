// Package durable defines the durable tier abstraction used by hybridstore.
//
// The durable tier is the source of truth: writes land here before the fast
// tier is touched, and a fast tier miss falls back to it. Implementations
// have no expiry and no practical size cap.
package durable

import "context"

// Store is a persistent byte store keyed by the caller's durable key
// (a blob path, a document ID, ...). Must be safe for concurrent use.
type Store interface {
	// Read returns (payload, true, nil) when the key exists and
	// (nil, false, nil) when it does not. Absence is an expected outcome,
	// never an error.
	Read(ctx context.Context, key string) ([]byte, bool, error)

	// Write persists payload under key, replacing any previous value.
	Write(ctx context.Context, key string, payload []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
