package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

// AddressLen is the size of an Address in bytes.
const AddressLen = 20

// Address is an opaque account identifier.
type Address [AddressLen]byte

// NewAddress creates an Address from bytes, returning an error unless
// len(b) == AddressLen. The input is copied.
func NewAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, codecerr.InvalidLength("address", len(b))
	}
	copy(a[:], b)
	return a, nil
}

// MustNewAddress is NewAddress for trusted input.
func MustNewAddress(b []byte) Address {
	a, err := NewAddress(b)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Bytes() []byte {
	out := make([]byte, AddressLen)
	copy(out, a[:])
	return out
}

func (a Address) String() string { return hexutil.Encode(a[:]) }

func (a Address) MarshalText() ([]byte, error) {
	return hexutil.Bytes(a[:]).MarshalText()
}

func (a *Address) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Address", input, a[:])
}

func (a Address) MarshalBinary() ([]byte, error) { return AddressCodec{}.Encode(a) }

func (a *Address) UnmarshalBinary(b []byte) error {
	v, err := AddressCodec{}.Decode(b)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
