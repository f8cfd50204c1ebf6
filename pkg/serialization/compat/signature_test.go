package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
	"github.com/matterhornlabs/ethcompat/internal/testutils"
	"github.com/matterhornlabs/ethcompat/pkg/serialization/codec/wire"
	"github.com/matterhornlabs/ethcompat/pkg/serialization/compat"
)

func mustUint256(t *testing.T, s string) ethtypes.Uint256 {
	u, err := ethtypes.Uint256FromHex(s)
	require.NoError(t, err)
	return u
}

func TestSignatureEncodeLayout(t *testing.T) {
	sig := ethtypes.Signature{
		R: mustUint256(t, "0x840cfc572845f5786e702896b6bc64a25228186ca05856650e0856bca0058565"),
		S: mustUint256(t, "0x25e7109ceb98168d95b09b18bbf6b685130e0562f232a88466d40fb9cc5b6d1f"),
	}

	encoded, err := compat.SignatureCodec{}.Encode(sig)
	require.NoError(t, err)
	require.Len(t, encoded, ethtypes.SignatureWireSize)

	rEncoded, err := compat.U256Codec{}.Encode(sig.R)
	require.NoError(t, err)
	sEncoded, err := compat.U256Codec{}.Encode(sig.S)
	require.NoError(t, err)

	assert.Equal(t, rEncoded, encoded[:32])
	assert.Equal(t, sEncoded, encoded[32:64])
	assert.Equal(t, []byte{27, 0, 0, 0, 0, 0, 0, 0}, encoded[64:])
}

func TestSignatureParityMapping(t *testing.T) {
	sig := testutils.RandomSignature(t)

	sig.Parity = false
	encoded, err := compat.SignatureCodec{}.Encode(sig)
	require.NoError(t, err)
	assert.Equal(t, []byte{27, 0, 0, 0, 0, 0, 0, 0}, encoded[64:])

	sig.Parity = true
	encoded, err = compat.SignatureCodec{}.Encode(sig)
	require.NoError(t, err)
	assert.Equal(t, []byte{28, 0, 0, 0, 0, 0, 0, 0}, encoded[64:])
}

func TestSignatureRoundTrip(t *testing.T) {
	for _, parity := range []bool{false, true} {
		sig := testutils.RandomSignature(t)
		sig.Parity = parity

		encoded, err := compat.SignatureCodec{}.Encode(sig)
		require.NoError(t, err)

		decoded, err := compat.SignatureCodec{}.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, sig, decoded)
	}
}

func TestSignatureDecodeRejectsForeignMarkers(t *testing.T) {
	sig := testutils.RandomSignature(t)
	encoded, err := compat.SignatureCodec{}.Encode(sig)
	require.NoError(t, err)

	for _, marker := range []uint64{0, 1, 26, 29, 255} {
		tampered := append([]byte(nil), encoded...)
		copy(tampered[64:], wire.FixedWidth[uint64]{}.Serialize(marker, 8))

		_, err := compat.SignatureCodec{}.Decode(tampered)
		require.ErrorIs(t, err, compat.ErrInvalidRecoveryMarker, "marker %d", marker)
	}
}

func TestSignatureDecodeAcceptsLegacyMarkers(t *testing.T) {
	sig := testutils.RandomSignature(t)
	encoded, err := compat.SignatureCodec{}.Encode(sig)
	require.NoError(t, err)

	for marker, parity := range map[uint64]bool{27: false, 28: true} {
		tampered := append([]byte(nil), encoded...)
		copy(tampered[64:], wire.FixedWidth[uint64]{}.Serialize(marker, 8))

		decoded, err := compat.SignatureCodec{}.Decode(tampered)
		require.NoError(t, err)
		assert.Equal(t, parity, decoded.Parity)
		assert.Equal(t, sig.R, decoded.R)
		assert.Equal(t, sig.S, decoded.S)
	}
}

func TestSignatureDecodeLengthMismatch(t *testing.T) {
	for _, size := range []int{0, 64, 71, 73, 96} {
		_, err := compat.SignatureCodec{}.Decode(make([]byte, size))
		require.ErrorIs(t, err, compat.ErrLengthMismatch, "size %d", size)
	}
}

func TestSignatureErrorMessage(t *testing.T) {
	encoded := make([]byte, ethtypes.SignatureWireSize)
	encoded[64] = 26

	_, err := compat.SignatureCodec{}.Decode(encoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong v, only 27 or 28")
}
