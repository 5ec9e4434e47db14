// Package genesis reads and writes the chain metadata document a network is
// bootstrapped from. Documents are TOML or JSON with snake_case keys:
//
//	chain_id = "0x..."
//	common_ref = "0x..."
//	timeout_gap = 20
//	...
//
//	[[verifier_list]]
//	bls_pub_key = "0x..."
//	address = "0x..."
//	propose_weight = 1
//	vote_weight = 1
//
// Unknown keys are rejected.
package genesis

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/unkn0wn-root/chaincodec/types"
)

var (
	ErrNoChainID         = errors.New("genesis: chain_id is zero")
	ErrNoVerifiers       = errors.New("genesis: verifier_list is empty")
	ErrNoRatios          = errors.New("genesis: all consensus ratios are zero")
	ErrDuplicateVerifier = errors.New("genesis: duplicate verifier address")
	ErrUnknownKeys       = errors.New("genesis: unknown keys")
	ErrFormat            = errors.New("genesis: unsupported document format")
)

// DecodeTOML reads and validates a TOML document.
func DecodeTOML(r io.Reader) (types.Metadata, error) {
	var m types.Metadata
	md, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return types.Metadata{}, errors.Wrap(err, "genesis: decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return types.Metadata{}, errors.Wrapf(ErrUnknownKeys, "%s", strings.Join(keys, ", "))
	}
	if err := Validate(m); err != nil {
		return types.Metadata{}, err
	}
	return m, nil
}

// DecodeJSON reads and validates a JSON document.
func DecodeJSON(r io.Reader) (types.Metadata, error) {
	var m types.Metadata
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return types.Metadata{}, errors.Wrap(err, "genesis: decode json")
	}
	if err := Validate(m); err != nil {
		return types.Metadata{}, err
	}
	return m, nil
}

// EncodeTOML writes m as a TOML document. m is validated first.
func EncodeTOML(w io.Writer, m types.Metadata) error {
	if err := Validate(m); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return errors.Wrap(err, "genesis: encode toml")
	}
	return nil
}

// Load reads a document from path, choosing the format by extension.
func Load(path string) (types.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Metadata{}, errors.Wrap(err, "genesis: open")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(f)
	case ".json":
		return DecodeJSON(f)
	default:
		return types.Metadata{}, errors.Wrapf(ErrFormat, "%q", path)
	}
}

// Validate checks the invariants a bootstrappable metadata must hold.
func Validate(m types.Metadata) error {
	if m.ChainID.IsZero() {
		return ErrNoChainID
	}
	if len(m.VerifierList) == 0 {
		return ErrNoVerifiers
	}
	if m.ProposeRatio == 0 && m.PrevoteRatio == 0 && m.PrecommitRatio == 0 && m.BrakeRatio == 0 {
		return ErrNoRatios
	}
	seen := make(map[types.Address]int, len(m.VerifierList))
	for i, v := range m.VerifierList {
		if j, ok := seen[v.Address]; ok {
			return errors.Wrapf(ErrDuplicateVerifier, "%s at %d and %d", v.Address, j, i)
		}
		seen[v.Address] = i
	}
	return nil
}
