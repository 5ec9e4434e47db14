// Package codecerr holds the stable error identities surfaced by the fixed
// and RLP codecs. Callers match them with errors.Is; detail-carrying errors
// wrap the sentinel.
package codecerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Class groups error identities by failure mode.
type Class int

const (
	ClassUnknown Class = iota
	// Underflow: input shorter than the width implied by the target type.
	Underflow
	// ContentInvalid: bytes cannot represent the target value.
	ContentInvalid
	// Structural: RLP shape violation.
	Structural
)

var classNames = map[Class]string{
	ClassUnknown:   "unknown",
	Underflow:      "underflow",
	ContentInvalid: "content_invalid",
	Structural:     "structural",
}

func (c Class) String() string { return classNames[c] }

var (
	ErrDecodeBool   = errors.New("codec: decode bool")
	ErrDecodeUint8  = errors.New("codec: decode uint8")
	ErrDecodeUint32 = errors.New("codec: decode uint32")
	ErrDecodeUint64 = errors.New("codec: decode uint64")
	ErrStringUTF8   = errors.New("codec: invalid utf-8 string")

	ErrInvalidLength    = errors.New("rlp: invalid length")
	ErrIncorrectListLen = errors.New("rlp: incorrect list length")
	ErrIsTooShort       = errors.New("rlp: list is too short")
	ErrExpectedList     = errors.New("rlp: expected list")
	ErrMalformed        = errors.New("rlp: malformed input")
	ErrCustom           = errors.New("rlp: custom decode error")
)

// ErrDecodeBool is both an underflow (empty input) and a content error
// (byte > 1); it is classed by its more common cause.
var classes = []struct {
	err   error
	class Class
}{
	{ErrDecodeUint8, Underflow},
	{ErrDecodeUint32, Underflow},
	{ErrDecodeUint64, Underflow},
	{ErrDecodeBool, ContentInvalid},
	{ErrStringUTF8, ContentInvalid},
	{ErrCustom, ContentInvalid},
	{ErrInvalidLength, Structural},
	{ErrIncorrectListLen, Structural},
	{ErrIsTooShort, Structural},
	{ErrExpectedList, Structural},
	{ErrMalformed, Structural},
}

// ClassOf reports the class of the first known identity err matches.
func ClassOf(err error) Class {
	if err == nil {
		return ClassUnknown
	}
	for _, c := range classes {
		if errors.Is(err, c.err) {
			return c.class
		}
	}
	return ClassUnknown
}

// StringUTF8 reports an invalid UTF-8 sequence; detail describes the input.
func StringUTF8(detail string) error {
	return errors.Wrapf(ErrStringUTF8, "%s", detail)
}

// Custom reports a domain reconstruction failure.
func Custom(msg string) error {
	return errors.Wrap(ErrCustom, msg)
}

// InvalidLength wraps ErrInvalidLength with what was being built.
func InvalidLength(what string, got int) error {
	return errors.Wrapf(ErrInvalidLength, "%s: got %d bytes", what, got)
}

// Malformed tags an error from the RLP engine as structural. Both the tag and
// the original cause stay reachable through errors.Is.
func Malformed(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}

// FieldError locates a failure inside a positional record.
type FieldError struct {
	Record string
	Index  int
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s[%d]: %v", e.Record, e.Index, e.Err)
	}
	return fmt.Sprintf("%s[%d] %s: %v", e.Record, e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
