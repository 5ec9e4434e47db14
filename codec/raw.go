package codec

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

// Bytes is an identity codec for opaque byte buffers. Both directions return
// a copy so the caller owns the result.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return bytes.Clone(b), nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return bytes.Clone(b), nil }

// String encodes the raw UTF-8 bytes of s with no length prefix. Decode
// rejects invalid UTF-8.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }

func (String) Decode(b []byte) (string, error) {
	if off := invalidUTF8At(b); off >= 0 {
		return "", codecerr.StringUTF8(fmt.Sprintf("invalid utf-8 sequence at offset %d of %d bytes", off, len(b)))
	}
	return string(b), nil
}

// invalidUTF8At returns the offset of the first invalid sequence, or -1.
func invalidUTF8At(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for off := 0; off < len(b); {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			return off
		}
		off += size
	}
	return -1
}
