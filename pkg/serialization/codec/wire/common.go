package wire

import (
	"fmt"
)

// Presence markers for optional values. Every optional on the wire, no
// matter which codec produced it, uses exactly these bytes.
const (
	AbsentMarker  byte = 0x00
	PresentMarker byte = 0x01
)

// IntLength returns the byte width of a fixed-size integer type.
func IntLength(in any) (uint8, error) {
	switch in.(type) {
	case uint8, int8:
		return 1, nil
	case uint16, int16:
		return 2, nil
	case uint32, int32:
		return 4, nil
	case uint64, int64:
		return 8, nil
	default:
		return 0, fmt.Errorf(ErrUnsupportedType, in)
	}
}
