package ethtypes

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type Address [AddressSize]byte

func AddressFromHex(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("decoding address hex %q: %w", s, err)
	}
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(b))
	}
	return Address(b), nil
}

func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// AddressFromPubKey derives the account address from a 64-byte uncompressed
// public key (without the 0x04 prefix): the last 20 bytes of its Keccak-256
// digest.
func AddressFromPubKey(pub []byte) (Address, error) {
	if len(pub) != 64 {
		return Address{}, fmt.Errorf("public key must be 64 bytes, got %d", len(pub))
	}
	digest := Keccak256(pub)

	var a Address
	copy(a[:], digest[HashSize-AddressSize:])
	return a, nil
}

// Common converts to the legacy library's address type.
func (a Address) Common() common.Address {
	return common.Address(a)
}

func AddressFromCommon(c common.Address) Address {
	return Address(c)
}
