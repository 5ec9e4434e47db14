// Package rlpview gives positional, read-only access to the elements of an
// RLP list. Elements are kept as raw encodings so nested values can be
// decoded recursively with rlp.DecodeBytes.
package rlpview

import (
	"math"
	"math/bits"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

// List is a parsed RLP list. Elements alias the input buffer.
type List struct {
	elems [][]byte
}

// Parse reads exactly one RLP list from b.
func Parse(b []byte) (List, error) {
	kind, content, rest, err := rlp.Split(b)
	if err != nil {
		return List{}, codecerr.Malformed(err)
	}
	if kind != rlp.List {
		return List{}, codecerr.ErrExpectedList
	}
	if len(rest) != 0 {
		return List{}, codecerr.Malformed(rlp.ErrMoreThanOneValue)
	}

	var elems [][]byte
	for len(content) > 0 {
		_, _, tail, err := rlp.Split(content)
		if err != nil {
			return List{}, codecerr.Malformed(err)
		}
		elems = append(elems, content[:len(content)-len(tail)])
		content = tail
	}
	return List{elems: elems}, nil
}

// Len is the list arity.
func (l List) Len() int { return len(l.elems) }

// Raw returns the full encoding of element i.
func (l List) Raw(i int) ([]byte, error) {
	if i < 0 || i >= len(l.elems) {
		return nil, codecerr.ErrIsTooShort
	}
	return l.elems[i], nil
}

// Bytes returns the content of string element i.
func (l List) Bytes(i int) ([]byte, error) {
	raw, err := l.Raw(i)
	if err != nil {
		return nil, err
	}
	content, _, err := rlp.SplitString(raw)
	if err != nil {
		return nil, codecerr.Malformed(err)
	}
	return content, nil
}

// String returns string element i, which must be valid UTF-8.
func (l List) String(i int) (string, error) {
	b, err := l.Bytes(i)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", codecerr.StringUTF8("rlp string element is not utf-8")
	}
	return string(b), nil
}

// Uint64 returns canonical integer element i.
func (l List) Uint64(i int) (uint64, error) {
	raw, err := l.Raw(i)
	if err != nil {
		return 0, err
	}
	x, _, err := rlp.SplitUint64(raw)
	if err != nil {
		return 0, codecerr.Malformed(err)
	}
	return x, nil
}

// Uint32 is Uint64 with a 32-bit range check.
func (l List) Uint32(i int) (uint32, error) {
	x, err := l.Uint64(i)
	if err != nil {
		return 0, err
	}
	if x > math.MaxUint32 {
		return 0, codecerr.InvalidLength("uint32", (bits.Len64(x)+7)/8)
	}
	return uint32(x), nil
}

// Decode decodes element i into v with the value's own RLP decoder.
func (l List) Decode(i int, v any) error {
	raw, err := l.Raw(i)
	if err != nil {
		return err
	}
	return rlp.DecodeBytes(raw, v)
}

// Each calls fn with the raw encoding of every element of list element i.
func (l List) Each(i int, fn func(raw []byte) error) error {
	raw, err := l.Raw(i)
	if err != nil {
		return err
	}
	inner, err := Parse(raw)
	if err != nil {
		return err
	}
	for _, e := range inner.elems {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}
