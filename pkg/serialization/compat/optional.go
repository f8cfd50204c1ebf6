package compat

import (
	"fmt"

	"github.com/matterhornlabs/ethcompat/pkg/serialization/codec/wire"
)

// OptionalCodec lifts a codec for T into one for *T. A nil pointer is the
// absent case. The presence markers are the wire framework's own, never
// bespoke to this codec, so optionals composed into larger structures stay
// byte-compatible with the legacy library's optional encoding.
type OptionalCodec[T any] struct {
	inner Codec[T]
}

// Optional wraps inner into a codec for optional values.
func Optional[T any](inner Codec[T]) OptionalCodec[T] {
	return OptionalCodec[T]{inner: inner}
}

func (c OptionalCodec[T]) Encode(value *T) ([]byte, error) {
	if value == nil {
		return []byte{wire.AbsentMarker}, nil
	}
	encoded, err := c.inner.Encode(*value)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(encoded))
	out = append(out, wire.PresentMarker)
	return append(out, encoded...), nil
}

func (c OptionalCodec[T]) Decode(data []byte) (*T, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input for optional", ErrLengthMismatch)
	}

	switch data[0] {
	case wire.AbsentMarker:
		if len(data) != 1 {
			return nil, fmt.Errorf("%w: %d trailing bytes after absent marker",
				ErrLengthMismatch, len(data)-1)
		}
		return nil, nil
	case wire.PresentMarker:
		value, err := c.inner.Decode(data[1:])
		if err != nil {
			return nil, err
		}
		return &value, nil
	default:
		return nil, wire.ErrInvalidMarker
	}
}
