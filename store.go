package chaincodec

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	c "github.com/unkn0wn-root/chaincodec/codec"
	"github.com/unkn0wn-root/chaincodec/codecerr"
	"github.com/unkn0wn-root/chaincodec/internal/util"
	"github.com/unkn0wn-root/chaincodec/internal/wire"
	pr "github.com/unkn0wn-root/chaincodec/provider"
	"github.com/unkn0wn-root/chaincodec/types"
)

type store[V any] struct {
	ns       string
	provider pr.Provider
	codec    c.Codec[V]
	log      Logger
	hooks    Hooks

	enabled bool

	ttl            time.Duration
	maxDecode      int
	maxParallel    int
	computeSetCost SetCostFunc
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Codec == nil {
		return nil, ErrNoCodec
	}
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}

	s := &store[V]{
		ns:        opts.Namespace,
		provider:  opts.Provider,
		codec:     opts.Codec,
		enabled:   !opts.Disabled,
		maxDecode: opts.MaxDecode,
	}
	if s.maxDecode > 0 {
		s.codec = c.Limit[V]{Inner: opts.Codec, MaxDecode: s.maxDecode}
	}

	// defaults
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.ttl = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)
	s.maxParallel = coalesce[int](opts.MaxParallel, defaultMaxParallel)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = frameCost
	}
	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}

// Put encodes v and stores it under the digest of its encoding. The digest is
// returned even when the store is disabled or the provider rejects the write.
func (s *store[V]) Put(ctx context.Context, v V) (types.Hash, error) {
	payload, err := s.codec.Encode(v)
	if err != nil {
		return types.Hash{}, errors.Wrap(err, "chaincodec: encode")
	}
	h := types.Digest(payload)
	if !s.enabled {
		return h, nil
	}

	k := s.key(h)
	if s.maxDecode > 0 && len(payload) > s.maxDecode {
		s.hooks.OversizeWrite(k, len(payload))
		return h, errors.Wrapf(c.ErrPayloadTooLarge, "chaincodec: put %s: %d > %d bytes", k, len(payload), s.maxDecode)
	}

	frame := wire.Encode(h, payload)
	ok, err := s.provider.Set(ctx, k, frame, s.computeSetCost(k, frame), s.ttl)
	if err != nil {
		return h, errors.Wrapf(err, "chaincodec: put %s", k)
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Put rejected by provider (pressure)", recordFields(s.ns, k, Fields{"size": len(frame)}))
	}
	return h, nil
}

func (s *store[V]) Get(ctx context.Context, h types.Hash) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.key(h)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	v, ok := s.open(ctx, h, k, raw)
	return v, ok, nil
}

func (s *store[V]) Delete(ctx context.Context, h types.Hash) error {
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, s.key(h))
}

func (s *store[V]) GetMany(ctx context.Context, hs []types.Hash) (map[types.Hash]V, []types.Hash, error) {
	out := make(map[types.Hash]V, len(hs))
	if !s.enabled {
		missing := make([]types.Hash, 0, len(hs))
		missing = append(missing, hs...)
		return out, missing, nil
	}
	if len(hs) == 0 {
		return out, nil, nil
	}

	keys := make([]string, len(hs))
	for i, h := range hs {
		keys[i] = s.key(h)
	}
	raws, err := s.fetch(ctx, keys)
	if err != nil {
		return nil, nil, err
	}

	var missing []types.Hash
	for i, h := range hs {
		if _, dup := out[h]; dup {
			continue
		}
		raw, hit := raws[keys[i]]
		if !hit {
			missing = append(missing, h)
			continue
		}
		v, ok := s.open(ctx, h, keys[i], raw)
		if !ok {
			delete(raws, keys[i]) // healed; a repeated digest misses too
			missing = append(missing, h)
			continue
		}
		out[h] = v
	}
	return out, missing, nil
}

// fetch reads keys in one round trip when the provider supports it,
// otherwise with bounded parallel Gets.
func (s *store[V]) fetch(ctx context.Context, keys []string) (map[string][]byte, error) {
	if bg, ok := s.provider.(pr.BatchGetter); ok {
		return bg.GetMany(ctx, keys)
	}

	raws := make([][]byte, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, k := range keys {
		g.Go(func() error {
			b, ok, err := s.provider.Get(gctx, k)
			if err != nil {
				return errors.Wrapf(err, "chaincodec: get %s", k)
			}
			if ok {
				raws[i] = b
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(keys))
	for i, b := range raws {
		if b != nil {
			out[keys[i]] = b
		}
	}
	return out, nil
}

// open validates a stored frame against the digest it was requested by and
// decodes its payload. Any failure deletes the entry and reports a miss.
func (s *store[V]) open(ctx context.Context, h types.Hash, k string, raw []byte) (V, bool) {
	var zero V
	digest, payload, err := wire.Decode(raw)
	if err != nil {
		s.heal(ctx, k, ReasonCorrupt, err)
		return zero, false
	}
	if got := types.Digest(payload); digest != h || got != h {
		s.heal(ctx, k, ReasonDigestMismatch, &IntegrityError{Key: k, Want: h, Got: got})
		return zero, false
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.heal(ctx, k, ReasonValueDecode, err)
		return zero, false
	}
	return v, true
}

func (s *store[V]) heal(ctx context.Context, k, reason string, cause error) {
	s.hooks.SelfHeal(k, reason)
	s.log.Warn("self-heal: dropping record", recordFields(s.ns, k, Fields{
		"reason": reason,
		"class":  codecerr.ClassOf(cause).String(),
		"err":    cause,
	}))
	if err := s.provider.Del(ctx, k); err != nil {
		s.log.Error("self-heal delete failed", recordFields(s.ns, k, Fields{"err": err}))
	}
}

func (s *store[V]) key(h types.Hash) string {
	// isolate by namespace
	return util.RecordKey(s.ns, h[:])
}
