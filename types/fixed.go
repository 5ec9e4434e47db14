package types

import "github.com/unkn0wn-root/chaincodec/codec"

// Fixed codecs of the composite domain types. A composite has no layout of
// its own in the fixed form: its fixed bytes are its RLP bytes.
type (
	HashCodec     = codec.RLP[Hash]
	AddressCodec  = codec.RLP[Address]
	HexCodec      = codec.RLP[Hex]
	MetadataCodec = codec.RLP[Metadata]
)

// ValidatorCodec is exposed for callers storing single verifiers.
type ValidatorCodec = codec.RLP[ValidatorExtend]
