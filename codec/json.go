package codec

import (
	"bytes"
	"encoding/json"
)

// JSON encodes V with encoding/json. Hash, Address and Hex render as 0x hex
// strings. Decode rejects unknown fields.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	err := dec.Decode(&v)
	return v, err
}
