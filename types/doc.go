// Package types defines the domain values carried by the codecs.
//
// # Values
//
// Hash: opaque 32-byte identifier. Digest computes the Keccak-256 Hash of
// arbitrary bytes.
//
// Address: opaque 20-byte account identifier.
//
// Hex: 0x-prefixed hex string, validated at construction.
//
// ValidatorExtend: a verifier with its BLS public key, address and weights.
//
// Metadata: chain configuration (13 positional fields).
//
// # Serialization
//
// Every type implements rlp.Encoder and rlp.Decoder with a fixed arity and
// field order. The fixed form of Hash, Address, Hex and Metadata is their RLP
// form; HashCodec, AddressCodec, HexCodec and MetadataCodec expose it as a
// codec.Codec, and MarshalBinary/UnmarshalBinary route through the same
// codecs so CBOR and msgpack carry them as byte strings.
//
// Hash, Address and Hex also implement encoding.TextMarshaler as 0x hex for
// JSON and TOML documents.
//
// Nested fields are nested RLP values: in ValidatorExtend, bls_pub_key and
// address are each their own one-element list, while the element inside a
// Hash or Address list is a flat byte string.
//
// # Usage Example
//
//	v := types.ValidatorExtend{
//	    BLSPubKey:     types.MustNewHex("0x0102030405060708"),
//	    Address:       addr,
//	    ProposeWeight: 10,
//	    VoteWeight:    20,
//	}
//	b, err := rlp.EncodeToBytes(v)
//
//	var out types.ValidatorExtend
//	err = rlp.DecodeBytes(b, &out)
package types
