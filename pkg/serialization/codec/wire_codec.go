package codec

import (
	"github.com/matterhornlabs/ethcompat/pkg/serialization/codec/wire"
)

// WireCodec implements the Codec interface with the in-house wire codec.
type WireCodec struct{}

func NewWireCodec() *WireCodec {
	return &WireCodec{}
}

func (c *WireCodec) Marshal(v interface{}) ([]byte, error) {
	return wire.Marshal(v)
}

func (c *WireCodec) MarshalCompact(x uint64) ([]byte, error) {
	return wire.SerializeCompact(x), nil
}

func (c *WireCodec) MarshalFixedWidth(x uint64, l uint8) ([]byte, error) {
	if l == 0 || l > 8 {
		return nil, wire.ErrInvalidWidth
	}
	return wire.FixedWidth[uint64]{}.Serialize(x, l), nil
}

func (c *WireCodec) Unmarshal(data []byte, v interface{}) error {
	return wire.Unmarshal(data, v)
}
