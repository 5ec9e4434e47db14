package codec

import (
	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

var ErrPayloadTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec to enforce a maximum payload size at Decode
// time. Encode is forwarded unchanged. MaxDecode <= 0 disables the check.
//
// Typical use: bound what is decoded from a shared store or the network.
type Limit[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, errors.Wrapf(ErrPayloadTooLarge, "%d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}

// Strict wraps a fixed-width codec and rejects inputs longer than its width.
// Shorter inputs reach Inner so they fail with its own underflow error.
type Strict[V any] struct {
	Inner SizedCodec[V]
}

func (c Strict[V]) Size() int { return c.Inner.Size() }

func (c Strict[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Strict[V]) Decode(b []byte) (V, error) {
	if n := c.Inner.Size(); len(b) > n {
		var zero V
		return zero, codecerr.InvalidLength("fixed-width value", len(b))
	}
	return c.Inner.Decode(b)
}
