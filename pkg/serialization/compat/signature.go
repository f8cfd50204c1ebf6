package compat

import (
	"bytes"
	"fmt"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
	"github.com/matterhornlabs/ethcompat/pkg/serialization/codec/wire"
)

// The legacy stack encodes recovery parity as 27 or 28, a convention
// inherited from the wider ecosystem. The mapping is a fixed wire contract:
// changing it breaks every consumer of the legacy format.
const (
	recoveryMarkerEven uint64 = 27
	recoveryMarkerOdd  uint64 = 28
)

// legacySignature is the three-field record the legacy library serializes.
// It only ever exists for the duration of one encode or decode.
type legacySignature struct {
	R ethtypes.Uint256
	S ethtypes.Uint256
	V uint64
}

// SignatureCodec bridges the boolean-parity signature representation with
// the legacy {r, s, v} record. Fields go on the wire in that order with no
// tags, so both field order and per-field layout must match the legacy
// library exactly.
type SignatureCodec struct{}

func (SignatureCodec) Encode(value ethtypes.Signature) ([]byte, error) {
	v := recoveryMarkerEven
	if value.Parity {
		v = recoveryMarkerOdd
	}
	return wire.Marshal(legacySignature{R: value.R, S: value.S, V: v})
}

func (SignatureCodec) Decode(data []byte) (ethtypes.Signature, error) {
	if len(data) != ethtypes.SignatureWireSize {
		return ethtypes.Signature{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrLengthMismatch, ethtypes.SignatureWireSize, len(data))
	}

	r, err := U256Codec{}.Decode(data[:ethtypes.Uint256Size])
	if err != nil {
		return ethtypes.Signature{}, err
	}
	s, err := U256Codec{}.Decode(data[ethtypes.Uint256Size : 2*ethtypes.Uint256Size])
	if err != nil {
		return ethtypes.Signature{}, err
	}

	var v uint64
	dec := wire.NewDecoder(bytes.NewReader(data[2*ethtypes.Uint256Size:]))
	if err := dec.DecodeFixedWidth(&v, limbSize); err != nil {
		return ethtypes.Signature{}, fmt.Errorf("%w: recovery marker: %v", ErrLimbParse, err)
	}

	if v != recoveryMarkerEven && v != recoveryMarkerOdd {
		return ethtypes.Signature{}, fmt.Errorf("%w: got %d", ErrInvalidRecoveryMarker, v)
	}

	return ethtypes.Signature{R: r, S: s, Parity: v == recoveryMarkerOdd}, nil
}
