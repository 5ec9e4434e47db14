package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

// HashLen is the size of a Hash in bytes.
const HashLen = 32

// Hash is an opaque 32-byte identifier.
type Hash [HashLen]byte

// NewHash creates a Hash from bytes, returning an error unless len(b) == HashLen.
// The input is copied.
func NewHash(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLen {
		return h, codecerr.InvalidLength("hash", len(b))
	}
	copy(h[:], b)
	return h, nil
}

// MustNewHash is NewHash for trusted input; it panics on a bad length.
func MustNewHash(b []byte) Hash {
	h, err := NewHash(b)
	if err != nil {
		panic(err)
	}
	return h
}

// Digest returns the Keccak-256 hash of b.
func Digest(b []byte) Hash {
	var h Hash
	copy(h[:], crypto.Keccak256(b))
	return h
}

// Bytes returns a copy of the raw hash bytes.
func (h Hash) Bytes() []byte {
	out := make([]byte, HashLen)
	copy(out, h[:])
	return out
}

func (h Hash) IsZero() bool { return h == Hash{} }

// String returns the 0x-prefixed hex form.
func (h Hash) String() string { return hexutil.Encode(h[:]) }

func (h Hash) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Hash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash", input, h[:])
}

// MarshalBinary returns the fixed form, which for Hash is its RLP encoding.
func (h Hash) MarshalBinary() ([]byte, error) { return HashCodec{}.Encode(h) }

func (h *Hash) UnmarshalBinary(b []byte) error {
	v, err := HashCodec{}.Decode(b)
	if err != nil {
		return err
	}
	*h = v
	return nil
}
