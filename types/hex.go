package types

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Hex is a 0x-prefixed hex string. Only the digits are stored, so a "0X"
// input is rendered back with a lower-case "0x". The zero value is "0x".
type Hex struct {
	digits string
}

// NewHex validates s: it must carry a 0x prefix followed by an even number
// of hex digits.
func NewHex(s string) (Hex, error) {
	if _, err := hexutil.Decode(s); err != nil {
		return Hex{}, err
	}
	return Hex{digits: s[2:]}, nil
}

// MustNewHex is NewHex for trusted input.
func MustNewHex(s string) Hex {
	h, err := NewHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HexFromBytes encodes b as lower-case hex.
func HexFromBytes(b []byte) Hex {
	return Hex{digits: hex.EncodeToString(b)}
}

func (h Hex) String() string { return "0x" + h.digits }

// Trim0x returns the digits without the prefix.
func (h Hex) Trim0x() string { return h.digits }

// Bytes decodes the digits. Digits were validated at construction.
func (h Hex) Bytes() []byte {
	b, _ := hex.DecodeString(h.digits)
	return b
}

func (h Hex) IsEmpty() bool { return h.digits == "" }

func (h Hex) Equal(o Hex) bool { return h.digits == o.digits }

func (h Hex) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Hex) UnmarshalText(input []byte) error {
	v, err := NewHex(string(input))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h Hex) MarshalBinary() ([]byte, error) { return HexCodec{}.Encode(h) }

func (h *Hex) UnmarshalBinary(b []byte) error {
	v, err := HexCodec{}.Decode(b)
	if err != nil {
		return err
	}
	*h = v
	return nil
}
