package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matterhornlabs/ethcompat/pkg/serialization/codec"
)

func TestWireCodecRoundTrip(t *testing.T) {
	type record struct {
		Limbs [4]uint64
		Tag   uint64
	}
	original := record{Limbs: [4]uint64{1, 2, 3, 4}, Tag: 27}

	c := codec.NewWireCodec()
	data, err := c.Marshal(original)
	require.NoError(t, err)

	var decoded record
	require.NoError(t, c.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestWireCodecFixedWidth(t *testing.T) {
	c := codec.NewWireCodec()

	data, err := c.MarshalFixedWidth(28, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1c, 0, 0, 0, 0, 0, 0, 0}, data)

	_, err = c.MarshalFixedWidth(28, 9)
	require.Error(t, err)
}

func TestWireCodecCompact(t *testing.T) {
	c := codec.NewWireCodec()

	data, err := c.MarshalCompact(64)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01}, data)
}

// Both implementations must agree on the shared subset of the wire format;
// the full cross-check against SCALE lives in tests/integration.
func TestWireAndSCALECodecAgreeOnFixedWidth(t *testing.T) {
	w := codec.NewWireCodec()
	s := codec.NewSCALECodec()

	for _, x := range []uint64{0, 1, 27, 28, 1 << 40} {
		wb, err := w.MarshalFixedWidth(x, 8)
		require.NoError(t, err)
		sb, err := s.MarshalFixedWidth(x, 8)
		require.NoError(t, err)
		assert.Equal(t, sb, wb, "value %d", x)
	}
}
