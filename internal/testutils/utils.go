package testutils

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matterhornlabs/ethcompat/internal/ethtypes"
)

func RandomHash(t *testing.T) ethtypes.Hash {
	hash := make([]byte, ethtypes.HashSize)
	_, err := rand.Read(hash)
	require.NoError(t, err)
	return ethtypes.Hash(hash)
}

func RandomAddress(t *testing.T) ethtypes.Address {
	addr := make([]byte, ethtypes.AddressSize)
	_, err := rand.Read(addr)
	require.NoError(t, err)
	return ethtypes.Address(addr)
}

func RandomUint256(t *testing.T) ethtypes.Uint256 {
	var u ethtypes.Uint256
	for i := range u {
		u[i] = randomUint64(t)
	}
	return u
}

func RandomUint512(t *testing.T) ethtypes.Uint512 {
	var u ethtypes.Uint512
	for i := range u {
		u[i] = randomUint64(t)
	}
	return u
}

func RandomSignature(t *testing.T) ethtypes.Signature {
	return ethtypes.Signature{
		R:      RandomUint256(t),
		S:      RandomUint256(t),
		Parity: randomUint64(t)%2 == 1,
	}
}

func randomUint64(t *testing.T) uint64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	require.NoError(t, err)
	return binary.LittleEndian.Uint64(buf[:])
}
