package chaincodec

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/chaincodec/codec"
	pr "github.com/unkn0wn-root/chaincodec/provider"
	"github.com/unkn0wn-root/chaincodec/types"
)

// SetCostFunc returns the cost handed to Provider.Set for a framed record.
type SetCostFunc func(key string, frame []byte) int64

// Store is the content-addressed record API. Records are immutable: the key
// of a value is the digest of its encoding, so a Put never overwrites a
// different value.
type Store[V any] interface {
	Enabled() bool
	Close(context.Context) error

	Put(ctx context.Context, v V) (types.Hash, error)
	Get(ctx context.Context, h types.Hash) (v V, ok bool, err error)
	Delete(ctx context.Context, h types.Hash) error

	// GetMany returns the hits keyed by digest and the digests that missed,
	// in request order.
	GetMany(ctx context.Context, hs []types.Hash) (values map[types.Hash]V, missing []types.Hash, err error)
}

// Options tune the behavior of the record store.
// Namespace, Provider and Codec are required; others have sensible defaults.
type Options[V any] struct {
	// Required
	Namespace string // logical namespace to avoid collisions. e.g. "metadata", "validator"
	Provider  pr.Provider
	Codec     c.Codec[V] // should be deterministic: equal values must encode to equal bytes

	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	DefaultTTL     time.Duration // 0 => 10m
	MaxDecode      int           // >0 wraps Codec in codec.Limit
	Disabled       bool          // default false (enabled)
	ComputeSetCost SetCostFunc   // default len(frame)
	MaxParallel    int           // GetMany fan-out without a BatchGetter; 0 => 8
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}
