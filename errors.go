package chaincodec

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/chaincodec/types"
)

var (
	ErrNoProvider  = errors.New("chaincodec: provider is required")
	ErrNoCodec     = errors.New("chaincodec: codec is required")
	ErrNoNamespace = errors.New("chaincodec: namespace is required")
	ErrDigest      = errors.New("chaincodec: digest mismatch")
)

// IntegrityError reports a stored frame whose payload does not hash to the
// digest it was requested by.
type IntegrityError struct {
	Key  string
	Want types.Hash
	Got  types.Hash
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity %q: want digest %s, frame carries %s", e.Key, e.Want, e.Got)
}

func (e *IntegrityError) Unwrap() error { return ErrDigest }
