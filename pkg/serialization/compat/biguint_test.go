package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
	"github.com/matterhornlabs/ethcompat/internal/testutils"
	"github.com/matterhornlabs/ethcompat/pkg/serialization/compat"
)

func TestU256EncodeKnownLayout(t *testing.T) {
	// limb 0 is least significant and goes on the wire first,
	// each limb little endian
	value := ethtypes.Uint256{0x0102030405060708, 0, 0, 0xf1f2f3f4f5f6f7f8}

	encoded, err := compat.U256Codec{}.Encode(value)
	require.NoError(t, err)
	require.Len(t, encoded, ethtypes.Uint256Size)

	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, encoded[:8])
	assert.Equal(t, []byte{0xf8, 0xf7, 0xf6, 0xf5, 0xf4, 0xf3, 0xf2, 0xf1}, encoded[24:])
}

func TestU256EncodeIsLittleEndianOfBigEndianBytes(t *testing.T) {
	for i := 0; i < 16; i++ {
		value := testutils.RandomUint256(t)

		encoded, err := compat.U256Codec{}.Encode(value)
		require.NoError(t, err)

		be := value.Bytes32()
		for j := 0; j < ethtypes.Uint256Size; j++ {
			assert.Equal(t, be[ethtypes.Uint256Size-1-j], encoded[j])
		}
	}
}

func TestU256RoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		value := testutils.RandomUint256(t)

		encoded, err := compat.U256Codec{}.Encode(value)
		require.NoError(t, err)

		decoded, err := compat.U256Codec{}.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestU256DecodeLengthMismatch(t *testing.T) {
	for _, size := range []int{0, 1, 31, 33, 64} {
		_, err := compat.U256Codec{}.Decode(make([]byte, size))
		require.ErrorIs(t, err, compat.ErrLengthMismatch, "size %d", size)
	}
}

func TestU512RoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		value := testutils.RandomUint512(t)

		encoded, err := compat.U512Codec{}.Encode(value)
		require.NoError(t, err)
		require.Len(t, encoded, ethtypes.Uint512Size)

		decoded, err := compat.U512Codec{}.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestU512DecodeLengthMismatch(t *testing.T) {
	for _, size := range []int{0, 32, 63, 65, 128} {
		_, err := compat.U512Codec{}.Decode(make([]byte, size))
		require.ErrorIs(t, err, compat.ErrLengthMismatch, "size %d", size)
	}
}

func TestU512EncodeKnownLayout(t *testing.T) {
	value := ethtypes.Uint512{1}
	encoded, err := compat.U512Codec{}.Encode(value)
	require.NoError(t, err)

	expected := make([]byte, ethtypes.Uint512Size)
	expected[0] = 1
	assert.Equal(t, expected, encoded)
}

func TestBatchDecodeContinuesAfterFailure(t *testing.T) {
	good, err := compat.U256Codec{}.Encode(testutils.RandomUint256(t))
	require.NoError(t, err)

	inputs := [][]byte{good, make([]byte, 7), good}
	decoded := 0
	for _, in := range inputs {
		if _, err := (compat.U256Codec{}).Decode(in); err == nil {
			decoded++
		}
	}
	assert.Equal(t, 2, decoded)
}
