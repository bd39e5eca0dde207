// Package asynchook decouples hook sinks from the storage hot path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    SelfHealEvery: 10, // sample logs: ~every 10th self-heal
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	client, _ := hybridstore.New[string](hybridstore.Options[string]{
//	    Key:     "product:42",
//	    Cache:   fastTier,
//	    Durable: blobTier,
//	    Codec:   codec.String{},
//	    Hooks:   hooks, // or `raw` if you don't want async
//	})
//
// Events are dropped when the queue is full; hooks are advisory.
package asynchook

import (
	"sync"

	"github.com/aligent/hybridstore"
)

type Hooks struct {
	inner hybridstore.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ hybridstore.Hooks = (*Hooks)(nil)

func New(inner hybridstore.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CacheBypassed(k string, size int) {
	h.try(func() { h.inner.CacheBypassed(k, size) })
}
func (h *Hooks) SelfHealed(k string)       { h.try(func() { h.inner.SelfHealed(k) }) }
func (h *Hooks) CacheSetRejected(k string) { h.try(func() { h.inner.CacheSetRejected(k) }) }
func (h *Hooks) DeleteOutage(k string, ce, de error) {
	h.try(func() { h.inner.DeleteOutage(k, ce, de) })
}
