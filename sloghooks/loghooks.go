package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/aligent/hybridstore"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	BypassEvery   uint64
	SelfHealEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

// Hooks logs hybridstore events through slog, with sampling on the chatty
// ones. CacheBypassed fires on every oversized Put of the same key, and
// SelfHealed on every warm-up after a flush, so both support sampling.
type Hooks struct {
	l    *slog.Logger
	opts Options

	bypassCtr   atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ hybridstore.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CacheBypassed(storageKey string, size int) {
	if h.l == nil || !sample(h.opts.BypassEvery, &h.bypassCtr) {
		return
	}
	h.l.Info("hybridstore.cache_bypassed",
		"key", h.redact(storageKey),
		"size", size)
}

func (h *Hooks) SelfHealed(storageKey string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("hybridstore.self_healed",
		"key", h.redact(storageKey))
}

func (h *Hooks) CacheSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("hybridstore.cache_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) DeleteOutage(key string, cacheErr, durableErr error) {
	if h.l == nil {
		return
	}
	h.l.Error("hybridstore.delete_outage",
		"key", h.redact(key),
		"cache_err", cacheErr,
		"durable_err", durableErr)
}
