package compat

import (
	"bytes"
	"fmt"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
	"github.com/matterhornlabs/ethcompat/pkg/serialization/codec/wire"
)

const limbSize = 8

// U256Codec encodes a 256-bit unsigned integer as its four 64-bit limbs,
// least significant first, each limb in the framework's fixed-width layout.
// The result matches the legacy library's 4x64 integer byte for byte.
type U256Codec struct{}

func (U256Codec) Encode(value ethtypes.Uint256) ([]byte, error) {
	return encodeLimbs(value[:])
}

func (U256Codec) Decode(data []byte) (ethtypes.Uint256, error) {
	var out ethtypes.Uint256
	if err := decodeLimbs(data, out[:]); err != nil {
		return ethtypes.Uint256{}, err
	}
	return out, nil
}

// U512Codec is the 512-bit variant of U256Codec: eight limbs, same layout.
type U512Codec struct{}

func (U512Codec) Encode(value ethtypes.Uint512) ([]byte, error) {
	return encodeLimbs(value[:])
}

func (U512Codec) Decode(data []byte) (ethtypes.Uint512, error) {
	var out ethtypes.Uint512
	if err := decodeLimbs(data, out[:]); err != nil {
		return ethtypes.Uint512{}, err
	}
	return out, nil
}

func encodeLimbs(limbs []uint64) ([]byte, error) {
	out := make([]byte, 0, len(limbs)*limbSize)
	for _, limb := range limbs {
		out = append(out, wire.FixedWidth[uint64]{}.Serialize(limb, limbSize)...)
	}
	return out, nil
}

func decodeLimbs(data []byte, limbs []uint64) error {
	if len(data) != len(limbs)*limbSize {
		return fmt.Errorf("%w: expected %d bytes, got %d",
			ErrLengthMismatch, len(limbs)*limbSize, len(data))
	}

	dec := wire.NewDecoder(bytes.NewReader(data))
	for i := range limbs {
		if err := dec.DecodeFixedWidth(&limbs[i], limbSize); err != nil {
			return fmt.Errorf("%w: limb %d: %v", ErrLimbParse, i, err)
		}
	}
	return nil
}
