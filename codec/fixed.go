package codec

import (
	"encoding/binary"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

// Bool encodes false as 0x00 and true as 0x01. Any other leading byte fails
// to decode.
type Bool struct{}

var _ SizedCodec[bool] = Bool{}

func (Bool) Size() int { return 1 }

func (Bool) Encode(v bool) ([]byte, error) {
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (Bool) Decode(b []byte) (bool, error) {
	if len(b) == 0 {
		return false, codecerr.ErrDecodeBool
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, codecerr.ErrDecodeBool
	}
}

type Uint8 struct{}

var _ SizedCodec[uint8] = Uint8{}

func (Uint8) Size() int { return 1 }

func (Uint8) Encode(v uint8) ([]byte, error) { return []byte{v}, nil }

func (Uint8) Decode(b []byte) (uint8, error) {
	if len(b) == 0 {
		return 0, codecerr.ErrDecodeUint8
	}
	return b[0], nil
}

// Uint32 is 4 bytes little-endian.
type Uint32 struct{}

var _ SizedCodec[uint32] = Uint32{}

func (Uint32) Size() int { return 4 }

func (Uint32) Encode(v uint32) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), v), nil
}

func (Uint32) Decode(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, codecerr.ErrDecodeUint32
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 is 8 bytes little-endian.
type Uint64 struct{}

var _ SizedCodec[uint64] = Uint64{}

func (Uint64) Size() int { return 8 }

func (Uint64) Encode(v uint64) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), v), nil
}

func (Uint64) Decode(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, codecerr.ErrDecodeUint64
	}
	return binary.LittleEndian.Uint64(b), nil
}
