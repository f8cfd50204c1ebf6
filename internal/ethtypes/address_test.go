package ethtypes

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromHex(t *testing.T) {
	addr, err := AddressFromHex("0x000102030405060708090a0b0c0d0e0f10111213")
	require.NoError(t, err)
	assert.Equal(t, byte(0x13), addr[19])
	assert.Equal(t, "0x000102030405060708090a0b0c0d0e0f10111213", addr.Hex())

	_, err = AddressFromHex("0x0001")
	require.Error(t, err)

	_, err = AddressFromHex("0xzz0102030405060708090a0b0c0d0e0f10111213")
	require.Error(t, err)
}

func TestAddressCommonConversion(t *testing.T) {
	legacy := common.HexToAddress("0x000102030405060708090a0b0c0d0e0f10111213")

	addr := AddressFromCommon(legacy)
	assert.Equal(t, legacy.Bytes(), addr[:])
	assert.Equal(t, legacy, addr.Common())
}

func TestAddressFromPubKey(t *testing.T) {
	pub := make([]byte, 64)
	for i := range pub {
		pub[i] = byte(i)
	}

	addr, err := AddressFromPubKey(pub)
	require.NoError(t, err)

	digest := gethcrypto.Keccak256(pub)
	assert.Equal(t, digest[12:], addr[:])

	_, err = AddressFromPubKey(pub[:63])
	require.Error(t, err)
}
