package compat

import (
	"fmt"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
)

// AddressCodec copies the 20 address bytes verbatim; the legacy fixed-size
// array type has no tags or reordering, so identity is the wire contract.
type AddressCodec struct{}

func (AddressCodec) Encode(value ethtypes.Address) ([]byte, error) {
	out := make([]byte, ethtypes.AddressSize)
	copy(out, value[:])
	return out, nil
}

func (AddressCodec) Decode(data []byte) (ethtypes.Address, error) {
	if len(data) != ethtypes.AddressSize {
		return ethtypes.Address{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrLengthMismatch, ethtypes.AddressSize, len(data))
	}
	return ethtypes.Address(data), nil
}

// HashCodec is AddressCodec at hash width.
type HashCodec struct{}

func (HashCodec) Encode(value ethtypes.Hash) ([]byte, error) {
	out := make([]byte, ethtypes.HashSize)
	copy(out, value[:])
	return out, nil
}

func (HashCodec) Decode(data []byte) (ethtypes.Hash, error) {
	if len(data) != ethtypes.HashSize {
		return ethtypes.Hash{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrLengthMismatch, ethtypes.HashSize, len(data))
	}
	return ethtypes.Hash(data), nil
}
