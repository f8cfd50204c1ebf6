package codec

import (
	"github.com/ChainSafe/gossamer/pkg/scale"

	"github.com/matterhornlabs/ethcompat/pkg/serialization/codec/wire"
)

// SCALECodec implements the Codec interface for SCALE encoding and decoding.
type SCALECodec struct{}

func NewSCALECodec() *SCALECodec {
	return &SCALECodec{}
}

func (s *SCALECodec) Marshal(v interface{}) ([]byte, error) {
	return scale.Marshal(v)
}

// MarshalCompact encodes x as a SCALE compact integer (Go uints are
// compact-encoded by the framework).
func (s *SCALECodec) MarshalCompact(x uint64) ([]byte, error) {
	return scale.Marshal(uint(x))
}

func (s *SCALECodec) MarshalFixedWidth(x uint64, l uint8) ([]byte, error) {
	switch l {
	case 1:
		return scale.Marshal(uint8(x))
	case 2:
		return scale.Marshal(uint16(x))
	case 4:
		return scale.Marshal(uint32(x))
	case 8:
		return scale.Marshal(x)
	default:
		return nil, wire.ErrInvalidWidth
	}
}

func (s *SCALECodec) Unmarshal(data []byte, v interface{}) error {
	return scale.Unmarshal(data, v)
}
