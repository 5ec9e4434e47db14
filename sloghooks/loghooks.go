package sloghooks

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/unkn0wn-root/chaincodec"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	// Optional key redactor. Defaults to namespace plus a digest prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
}

var _ chaincodec.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

// shortKey keeps rec:<ns>: and the first 16 hex digits of the digest.
func shortKey(k string) string {
	i := strings.LastIndexByte(k, ':')
	if i < 0 || len(k)-i-1 <= 16 {
		return k
	}
	return k[:i+1+16]
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	return shortKey(k)
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("chaincodec.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("chaincodec.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) OversizeWrite(storageKey string, size int) {
	if h.l == nil {
		return
	}
	h.l.Error("chaincodec.oversize_write",
		"key", h.redact(storageKey),
		"size", size)
}
