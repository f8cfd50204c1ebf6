package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Compact integers carry the lengths of variable-size values. The four
// modes (single byte, two byte, four byte, big integer) are selected by the
// two low bits of the first byte; everything is little endian. Fixed-size
// values never pay for a length prefix.

// SerializeCompact encodes x in the shortest compact mode that fits.
func SerializeCompact(x uint64) []byte {
	switch {
	case x < 1<<6:
		return []byte{byte(x) << 2}
	case x < 1<<14:
		out := make([]byte, 2)
		binary.LittleEndian.PutUint16(out, uint16(x)<<2|0b01)
		return out
	case x < 1<<30:
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, uint32(x)<<2|0b10)
		return out
	default:
		n := 0
		for v := x; v > 0; v >>= 8 {
			n++
		}
		out := make([]byte, 1, n+1)
		out[0] = byte(n-4)<<2 | 0b11
		for i := 0; i < n; i++ {
			out = append(out, byte(x>>(8*i)))
		}
		return out
	}
}

// DeserializeCompact reads one compact integer from r.
func DeserializeCompact(r io.Reader, u *uint64) error {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return fmt.Errorf(ErrReadingByte, err)
	}

	switch first[0] & 0b11 {
	case 0b00:
		*u = uint64(first[0] >> 2)
	case 0b01:
		var rest [1]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return fmt.Errorf(ErrReadingBytes, err)
		}
		*u = uint64(binary.LittleEndian.Uint16([]byte{first[0], rest[0]})) >> 2
	case 0b10:
		buf := []byte{first[0], 0, 0, 0}
		if _, err := io.ReadFull(r, buf[1:]); err != nil {
			return fmt.Errorf(ErrReadingBytes, err)
		}
		*u = uint64(binary.LittleEndian.Uint32(buf)) >> 2
	default:
		n := int(first[0]>>2) + 4
		if n > 8 {
			return ErrCompactOutOfRange
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf(ErrReadingBytes, err)
		}
		*u = 0
		for i := 0; i < n; i++ {
			*u |= uint64(buf[i]) << (8 * i)
		}
	}

	return nil
}
