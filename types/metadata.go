package types

// Metadata is the chain-level configuration agreed on by all verifiers.
type Metadata struct {
	ChainID        Hash              `json:"chain_id" toml:"chain_id"`
	CommonRef      Hex               `json:"common_ref" toml:"common_ref"`
	TimeoutGap     uint64            `json:"timeout_gap" toml:"timeout_gap"`
	CyclesLimit    uint64            `json:"cycles_limit" toml:"cycles_limit"`
	CyclesPrice    uint64            `json:"cycles_price" toml:"cycles_price"`
	Interval       uint64            `json:"interval" toml:"interval"`
	VerifierList   []ValidatorExtend `json:"verifier_list" toml:"verifier_list"`
	ProposeRatio   uint64            `json:"propose_ratio" toml:"propose_ratio"`
	PrevoteRatio   uint64            `json:"prevote_ratio" toml:"prevote_ratio"`
	PrecommitRatio uint64            `json:"precommit_ratio" toml:"precommit_ratio"`
	BrakeRatio     uint64            `json:"brake_ratio" toml:"brake_ratio"`
	TxNumLimit     uint64            `json:"tx_num_limit" toml:"tx_num_limit"`
	MaxTxSize      uint64            `json:"max_tx_size" toml:"max_tx_size"`
}

// metadataFieldNames is the RLP field order of Metadata. It is part of the
// wire contract.
var metadataFieldNames = [...]string{
	"chain_id",
	"common_ref",
	"timeout_gap",
	"cycles_limit",
	"cycles_price",
	"interval",
	"verifier_list",
	"propose_ratio",
	"prevote_ratio",
	"precommit_ratio",
	"brake_ratio",
	"tx_num_limit",
	"max_tx_size",
}

const metadataFields = len(metadataFieldNames)

// Hash returns the digest of the fixed encoding.
func (m Metadata) Hash() (Hash, error) {
	b, err := MetadataCodec{}.Encode(m)
	if err != nil {
		return Hash{}, err
	}
	return Digest(b), nil
}

// TotalVoteWeight sums the vote weight of all verifiers.
func (m Metadata) TotalVoteWeight() uint64 {
	var total uint64
	for _, v := range m.VerifierList {
		total += uint64(v.VoteWeight)
	}
	return total
}

func (m Metadata) MarshalBinary() ([]byte, error) { return MetadataCodec{}.Encode(m) }

func (m *Metadata) UnmarshalBinary(b []byte) error {
	v, err := MetadataCodec{}.Decode(b)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
