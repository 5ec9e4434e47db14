package codec

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

// RLP is the fixed codec of composite values: their fixed bytes are their
// RLP encoding. V must implement rlp.Encoder and *V rlp.Decoder, or be a
// type the RLP engine encodes natively.
//
// Unlike the scalar codecs, Decode rejects trailing bytes.
type RLP[V any] struct{}

func (RLP[V]) Encode(v V) ([]byte, error) {
	return rlp.EncodeToBytes(v)
}

func (RLP[V]) Decode(b []byte) (V, error) {
	var v V
	if err := rlp.DecodeBytes(b, &v); err != nil {
		var zero V
		if codecerr.ClassOf(err) == codecerr.ClassUnknown {
			err = codecerr.Malformed(err)
		}
		return zero, err
	}
	return v, nil
}
