// Package lazy provides an initialize-once container for shared tier handles.
//
// Applications construct one Handle per backing store at startup and pass it
// (or the store built from it) into every storage client, instead of hiding
// the shared state behind a package-level variable. Initialization runs at
// most once: concurrent callers racing the first acquisition block on the
// same attempt. A failed attempt is not cached - the next Get retries from
// scratch.
package lazy

import (
	"context"
	"sync"
)

// InitFunc builds the underlying handle (e.g. dials a connection).
type InitFunc[T any] func(ctx context.Context) (T, error)

type Handle[T any] struct {
	mu    sync.Mutex
	init  InitFunc[T]
	v     T
	ready bool
}

func New[T any](init InitFunc[T]) *Handle[T] {
	return &Handle[T]{init: init}
}

// Get returns the shared handle, initializing it on first use. The mutex is
// held across initialization, which is what serializes concurrent first
// callers onto a single attempt.
func (h *Handle[T]) Get(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ready {
		return h.v, nil
	}
	v, err := h.init(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	h.v = v
	h.ready = true
	return h.v, nil
}
