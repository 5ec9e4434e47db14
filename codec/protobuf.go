package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *wrapperspb.BytesValue { return &wrapperspb.BytesValue{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

var bytesValue = NewProtobuf(func() *wrapperspb.BytesValue { return &wrapperspb.BytesValue{} })

// Envelope carries the output of Inner inside a google.protobuf.BytesValue,
// for transports that only move protobuf messages.
type Envelope[V any] struct {
	Inner Codec[V]
}

func (e Envelope[V]) Encode(v V) ([]byte, error) {
	b, err := e.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return bytesValue.Encode(wrapperspb.Bytes(b))
}

func (e Envelope[V]) Decode(b []byte) (V, error) {
	m, err := bytesValue.Decode(b)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Inner.Decode(m.GetValue())
}
