// Package codec implements the fixed codecs: a length-implicit, little-endian
// byte form for scalars and opaque byte carriers, and the RLP form for
// composite values.
//
// The fixed form carries no tags or length prefixes, so the caller must know
// the target type. Fixed-width scalar decoders read their prefix and ignore
// trailing bytes, which lets callers decode from a slice of a larger buffer;
// wrap them in Strict to reject inputs of any other length.
//
// All codecs are stateless and safe for concurrent use.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Sized is implemented by fixed-width codecs; Size is the encoded width.
type Sized interface {
	Size() int
}

// SizedCodec is a fixed-width Codec.
type SizedCodec[V any] interface {
	Codec[V]
	Sized
}
