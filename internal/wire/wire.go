package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version   byte = 1
	digestLen      = 32
	header         = 4 + 1 + digestLen + 4
)

var (
	ErrCorrupt = errors.New("chaincodec: corrupt entry")
	magic4     = [...]byte{'C', 'H', 'C', 'D'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Encode frames payload with the digest it is stored under.
//
//	magic(4) | ver(1) | digest(32) | vlen(u32 be) | payload(vlen)
func Encode(digest [digestLen]byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(header + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.Write(digest[:])

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode returns the digest and payload of a frame. The payload aliases b.
// Bytes after the payload make the frame corrupt.
func Decode(b []byte) (digest [digestLen]byte, payload []byte, err error) {
	if len(b) < header || !hasMagic(b) || b[4] != version {
		return digest, nil, ErrCorrupt
	}

	off := 5
	copy(digest[:], b[off:off+digestLen])
	off += digestLen

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off {
		return digest, nil, ErrCorrupt
	}

	return digest, b[off:], nil
}
