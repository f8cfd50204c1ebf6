package wire

import (
	"errors"
)

var (
	ErrDecodingBool       = errors.New("error decoding boolean")
	ErrInvalidPointer     = errors.New("invalid pointer")
	ErrInvalidMarker      = errors.New("invalid optional presence marker")
	ErrCompactOutOfRange  = errors.New("compact value exceeds uint64 range")
	ErrInvalidWidth       = errors.New("fixed-width integers must be 1 to 8 bytes")
	ErrLengthExceedsLimit = errors.New("length exceeds max value of uint32")

	ErrUnsupportedType     = "unsupported type: %v"
	ErrReadingBytes        = "error reading bytes: %w"
	ErrReadingByte         = "error reading byte: %w"
	ErrDecodingCompact     = "error decoding compact integer: %w"
	ErrEncodingStructField = "encoding struct field '%s': %w"
	ErrDecodingStructField = "decoding struct field '%s': %w"
)
