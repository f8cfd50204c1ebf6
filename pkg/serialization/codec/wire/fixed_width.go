package wire

import (
	"math"
)

// FixedWidth implements the fixed little-endian integer layout shared with
// the legacy stack (this is what nearly every integer on the wire uses).
type FixedWidth[T uint8 | uint16 | uint32 | uint64] struct{}

// Serialize serializes x into l little-endian bytes.
func (FixedWidth[T]) Serialize(x T, l uint8) []byte {
	bytes := make([]byte, 0, l)
	for i := uint8(0); i < l; i++ {
		bytes = append(bytes, byte((x>>(8*i))&T(math.MaxUint8)))
	}
	return bytes
}

// Deserialize deserializes a little-endian byte slice into u.
func (FixedWidth[T]) Deserialize(serialized []byte, u *T) {
	*u = 0
	for i := 0; i < len(serialized); i++ {
		*u |= T(serialized[i]) << (8 * i)
	}
}

func serializeFixedWidth(x uint64, l uint8) []byte {
	return FixedWidth[uint64]{}.Serialize(x, l)
}
