package types

// ValidatorExtend describes one verifier of the chain.
type ValidatorExtend struct {
	BLSPubKey     Hex     `json:"bls_pub_key" toml:"bls_pub_key" msgpack:"bls_pub_key"`
	Address       Address `json:"address" toml:"address" msgpack:"address"`
	ProposeWeight uint32  `json:"propose_weight" toml:"propose_weight" msgpack:"propose_weight"`
	VoteWeight    uint32  `json:"vote_weight" toml:"vote_weight" msgpack:"vote_weight"`
}

// validatorFields is the RLP arity of ValidatorExtend.
const validatorFields = 4
