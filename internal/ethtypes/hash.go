package ethtypes

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

type Hash [HashSize]byte

// Keccak256 hashes the input data using Keccak-256.
func Keccak256(data []byte) Hash {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	hashed := hash.Sum(nil)

	var result Hash
	copy(result[:], hashed)
	return result
}

func HashFromHex(s string) (Hash, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("decoding hash hex %q: %w", s, err)
	}
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	return Hash(b), nil
}

func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// Common converts to the legacy library's hash type.
func (h Hash) Common() common.Hash {
	return common.Hash(h)
}

func HashFromCommon(c common.Hash) Hash {
	return Hash(c)
}
