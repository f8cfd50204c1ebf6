package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedWidthSerialize(t *testing.T) {
	tests := []struct {
		name     string
		x        uint64
		l        uint8
		expected []byte
	}{
		{"zero single byte", 0, 1, []byte{0x00}},
		{"max single byte", 255, 1, []byte{0xff}},
		{"two bytes little endian", 0x0102, 2, []byte{0x02, 0x01}},
		{"four bytes", 0xdeadbeef, 4, []byte{0xef, 0xbe, 0xad, 0xde}},
		{"recovery marker width", 27, 8, []byte{0x1b, 0, 0, 0, 0, 0, 0, 0}},
		{"full width", 0x0807060504030201, 8, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FixedWidth[uint64]{}.Serialize(tt.x, tt.l))
		})
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 27, 28, 1 << 32, 0xffffffffffffffff}
	for _, x := range values {
		serialized := FixedWidth[uint64]{}.Serialize(x, 8)

		var u uint64
		FixedWidth[uint64]{}.Deserialize(serialized, &u)
		assert.Equal(t, x, u)
	}
}

func TestFixedWidthNarrowTypes(t *testing.T) {
	serialized := FixedWidth[uint16]{}.Serialize(0xabcd, 2)
	assert.Equal(t, []byte{0xcd, 0xab}, serialized)

	var u uint16
	FixedWidth[uint16]{}.Deserialize(serialized, &u)
	assert.Equal(t, uint16(0xabcd), u)
}
