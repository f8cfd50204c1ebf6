package ethtypes

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Uint256 is a 256-bit unsigned integer held as 64-bit limbs, least
// significant limb first. The limb layout is shared with uint256.Int so the
// two convert without copying through bytes.
type Uint256 [Uint256Limbs]uint64

// Uint512 is a 512-bit unsigned integer, same limb order as Uint256.
type Uint512 [Uint512Limbs]uint64

// Uint256FromBytes32 interprets b as a big-endian 256-bit integer.
func Uint256FromBytes32(b [Uint256Size]byte) Uint256 {
	var u Uint256
	for i := range u {
		u[i] = binary.BigEndian.Uint64(b[Uint256Size-8*(i+1):])
	}
	return u
}

// Bytes32 returns the big-endian byte representation.
func (u Uint256) Bytes32() [Uint256Size]byte {
	var b [Uint256Size]byte
	for i, limb := range u {
		binary.BigEndian.PutUint64(b[Uint256Size-8*(i+1):], limb)
	}
	return b
}

func Uint256FromHex(s string) (Uint256, error) {
	b, err := fixedBytesFromHex(s, Uint256Size)
	if err != nil {
		return Uint256{}, err
	}
	return Uint256FromBytes32([Uint256Size]byte(b)), nil
}

func (u Uint256) Hex() string {
	b := u.Bytes32()
	return "0x" + hex.EncodeToString(b[:])
}

// Int converts to the arithmetic uint256.Int representation.
func (u Uint256) Int() *uint256.Int {
	v := uint256.Int(u)
	return &v
}

// Uint256FromInt converts from uint256.Int.
func Uint256FromInt(v *uint256.Int) Uint256 {
	return Uint256(*v)
}

func (u Uint256) BigInt() *big.Int {
	return u.Int().ToBig()
}

func (u Uint256) IsZero() bool {
	return u == Uint256{}
}

// Uint512FromBytes64 interprets b as a big-endian 512-bit integer.
func Uint512FromBytes64(b [Uint512Size]byte) Uint512 {
	var u Uint512
	for i := range u {
		u[i] = binary.BigEndian.Uint64(b[Uint512Size-8*(i+1):])
	}
	return u
}

// Bytes64 returns the big-endian byte representation.
func (u Uint512) Bytes64() [Uint512Size]byte {
	var b [Uint512Size]byte
	for i, limb := range u {
		binary.BigEndian.PutUint64(b[Uint512Size-8*(i+1):], limb)
	}
	return b
}

func Uint512FromHex(s string) (Uint512, error) {
	b, err := fixedBytesFromHex(s, Uint512Size)
	if err != nil {
		return Uint512{}, err
	}
	return Uint512FromBytes64([Uint512Size]byte(b)), nil
}

func (u Uint512) Hex() string {
	b := u.Bytes64()
	return "0x" + hex.EncodeToString(b[:])
}

func (u Uint512) IsZero() bool {
	return u == Uint512{}
}

func (u Uint512) BigInt() *big.Int {
	b := u.Bytes64()
	return new(big.Int).SetBytes(b[:])
}

// fixedBytesFromHex decodes a hex string, with or without the 0x prefix,
// left-padding with zeros up to size.
func fixedBytesFromHex(s string, size int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding hex string %q: %w", s, err)
	}
	if len(b) > size {
		return nil, fmt.Errorf("hex string %q longer than %d bytes", s, size)
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out, nil
}
