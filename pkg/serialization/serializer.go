package serialization

import "github.com/matterhornlabs/ethcompat/pkg/serialization/codec"

// Serializer provides methods to encode and decode using a specified codec.
type Serializer struct {
	codec codec.Codec
}

// NewSerializer initializes a new Serializer with the given codec.
func NewSerializer(c codec.Codec) *Serializer {
	return &Serializer{codec: c}
}

// Encode serializes the given value using the codec.
func (s *Serializer) Encode(v interface{}) ([]byte, error) {
	return s.codec.Marshal(v)
}

// EncodeCompact is the variable-length encoding for natural numbers up to 2^64.
func (s *Serializer) EncodeCompact(x uint64) ([]byte, error) {
	return s.codec.MarshalCompact(x)
}

// EncodeFixedWidth is the fixed little-endian encoding for natural numbers.
func (s *Serializer) EncodeFixedWidth(x uint64, l uint8) ([]byte, error) {
	return s.codec.MarshalFixedWidth(x, l)
}

// Decode deserializes the given data into the specified value using the codec.
func (s *Serializer) Decode(data []byte, v interface{}) error {
	return s.codec.Unmarshal(data, v)
}
