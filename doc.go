// Package chaincodec stores chain records (validators, metadata and any other
// value with a deterministic codec) in a provider-agnostic byte store, keyed by
// the Keccak-256 digest of their encoding.
//
// Records are immutable: a digest names exactly one encoding, so there is no
// invalidation and no stale read. Every read re-hashes the payload; a frame
// that fails to parse, carries the wrong digest or does not decode is deleted
// and reported as a miss.
//
// Components:
//   - Provider: byte store with TTL (e.g. Ristretto, BigCache, Redis).
//   - Codec[V]: (de)serializes V <-> []byte. types.MetadataCodec and
//     types.ValidatorCodec give the canonical RLP form.
//   - Hooks and Logger: observability for self-heal and provider pressure.
//
// Keys:
//
//	rec:<ns>:<hex digest>
//
// Usage:
//
//	s, _ := chaincodec.New(chaincodec.Options[types.Metadata]{
//	    Namespace: "metadata",
//	    Provider:  p,
//	    Codec:     types.MetadataCodec{},
//	})
//	h, _ := s.Put(ctx, m)       // h == m.Hash()
//	m2, ok, _ := s.Get(ctx, h)
package chaincodec
