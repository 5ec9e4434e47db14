package types

import (
	"errors"
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/unkn0wn-root/chaincodec/codecerr"
	"github.com/unkn0wn-root/chaincodec/internal/rlpview"
)

// Layouts (positional, arity is part of the wire contract):
//
//	Hex             [trim0x string]
//	Hash            [bytes(32)]
//	Address         [bytes(20)]
//	ValidatorExtend [Hex, Address, u32, u32]   (fields 0 and 1 are nested lists)
//	Metadata        [Hash, Hex, u64 x4, [ValidatorExtend...], u64 x6]

func (h Hex) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	l := buf.List()
	buf.WriteString(h.Trim0x())
	buf.ListEnd(l)
	return buf.Flush()
}

func (h *Hex) DecodeRLP(s *rlp.Stream) error {
	raw, err := s.Raw()
	if err != nil {
		return codecerr.Malformed(err)
	}
	l, err := single(raw)
	if err != nil {
		return err
	}
	digits, err := l.String(0)
	if err != nil {
		return err
	}
	v, err := NewHex("0x" + digits)
	if err != nil {
		return codecerr.Custom("decode hex from string error")
	}
	*h = v
	return nil
}

func (h Hash) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	l := buf.List()
	buf.WriteBytes(h[:])
	buf.ListEnd(l)
	return buf.Flush()
}

func (h *Hash) DecodeRLP(s *rlp.Stream) error {
	b, err := singleBytes(s)
	if err != nil {
		return err
	}
	v, err := NewHash(b)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (a Address) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	l := buf.List()
	buf.WriteBytes(a[:])
	buf.ListEnd(l)
	return buf.Flush()
}

func (a *Address) DecodeRLP(s *rlp.Stream) error {
	b, err := singleBytes(s)
	if err != nil {
		return err
	}
	v, err := NewAddress(b)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (v ValidatorExtend) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	l := buf.List()
	if err := v.BLSPubKey.EncodeRLP(buf); err != nil {
		return err
	}
	if err := v.Address.EncodeRLP(buf); err != nil {
		return err
	}
	buf.WriteUint64(uint64(v.ProposeWeight))
	buf.WriteUint64(uint64(v.VoteWeight))
	buf.ListEnd(l)
	return buf.Flush()
}

func (v *ValidatorExtend) DecodeRLP(s *rlp.Stream) error {
	raw, err := s.Raw()
	if err != nil {
		return codecerr.Malformed(err)
	}
	out, err := decodeValidator(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func decodeValidator(raw []byte) (ValidatorExtend, error) {
	var v ValidatorExtend
	l, err := rlpview.Parse(raw)
	if errors.Is(err, codecerr.ErrExpectedList) {
		return v, codecerr.ErrIncorrectListLen
	}
	if err != nil {
		return v, err
	}
	if l.Len() != validatorFields {
		return v, codecerr.ErrIncorrectListLen
	}

	if err := l.Decode(0, &v.BLSPubKey); err != nil {
		return v, validatorField(0, "bls_pub_key", err)
	}
	if err := l.Decode(1, &v.Address); err != nil {
		return v, validatorField(1, "address", err)
	}
	if v.ProposeWeight, err = l.Uint32(2); err != nil {
		return v, validatorField(2, "propose_weight", err)
	}
	if v.VoteWeight, err = l.Uint32(3); err != nil {
		return v, validatorField(3, "vote_weight", err)
	}
	return v, nil
}

func validatorField(i int, name string, err error) error {
	return &codecerr.FieldError{Record: "ValidatorExtend", Index: i, Field: name, Err: err}
}

func (m Metadata) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	l := buf.List()
	if err := m.ChainID.EncodeRLP(buf); err != nil {
		return err
	}
	if err := m.CommonRef.EncodeRLP(buf); err != nil {
		return err
	}
	buf.WriteUint64(m.TimeoutGap)
	buf.WriteUint64(m.CyclesLimit)
	buf.WriteUint64(m.CyclesPrice)
	buf.WriteUint64(m.Interval)

	vl := buf.List()
	for _, v := range m.VerifierList {
		if err := v.EncodeRLP(buf); err != nil {
			return err
		}
	}
	buf.ListEnd(vl)

	buf.WriteUint64(m.ProposeRatio)
	buf.WriteUint64(m.PrevoteRatio)
	buf.WriteUint64(m.PrecommitRatio)
	buf.WriteUint64(m.BrakeRatio)
	buf.WriteUint64(m.TxNumLimit)
	buf.WriteUint64(m.MaxTxSize)
	buf.ListEnd(l)
	return buf.Flush()
}

func (m *Metadata) DecodeRLP(s *rlp.Stream) error {
	raw, err := s.Raw()
	if err != nil {
		return codecerr.Malformed(err)
	}
	l, err := rlpview.Parse(raw)
	if err != nil {
		return err
	}
	if l.Len() > metadataFields {
		return codecerr.ErrIncorrectListLen
	}

	var out Metadata
	if err := l.Decode(0, &out.ChainID); err != nil {
		return metadataField(0, err)
	}
	if err := l.Decode(1, &out.CommonRef); err != nil {
		return metadataField(1, err)
	}

	u64s := []u64Field{
		{2, &out.TimeoutGap},
		{3, &out.CyclesLimit},
		{4, &out.CyclesPrice},
		{5, &out.Interval},
	}
	if err := readUint64s(l, u64s); err != nil {
		return err
	}

	// positional order: a short list fails at its first missing index.
	// An empty verifier list decodes to an empty, non-nil slice.
	out.VerifierList = []ValidatorExtend{}
	if err := l.Each(6, func(raw []byte) error {
		v, err := decodeValidator(raw)
		if err != nil {
			return err
		}
		out.VerifierList = append(out.VerifierList, v)
		return nil
	}); err != nil {
		return metadataField(6, err)
	}

	u64s = []u64Field{
		{7, &out.ProposeRatio},
		{8, &out.PrevoteRatio},
		{9, &out.PrecommitRatio},
		{10, &out.BrakeRatio},
		{11, &out.TxNumLimit},
		{12, &out.MaxTxSize},
	}
	if err := readUint64s(l, u64s); err != nil {
		return err
	}

	*m = out
	return nil
}

type u64Field struct {
	idx int
	dst *uint64
}

func readUint64s(l rlpview.List, fields []u64Field) error {
	for _, f := range fields {
		x, err := l.Uint64(f.idx)
		if err != nil {
			return metadataField(f.idx, err)
		}
		*f.dst = x
	}
	return nil
}

func metadataField(i int, err error) error {
	return &codecerr.FieldError{Record: "Metadata", Index: i, Field: metadataFieldNames[i], Err: err}
}

// single parses a one-element wrapper list.
func single(raw []byte) (rlpview.List, error) {
	l, err := rlpview.Parse(raw)
	if err != nil {
		return l, err
	}
	if l.Len() != 1 {
		return l, codecerr.ErrIncorrectListLen
	}
	return l, nil
}

func singleBytes(s *rlp.Stream) ([]byte, error) {
	raw, err := s.Raw()
	if err != nil {
		return nil, codecerr.Malformed(err)
	}
	l, err := single(raw)
	if err != nil {
		return nil, err
	}
	return l.Bytes(0)
}
