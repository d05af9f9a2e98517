package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var varIntVectors = []struct {
	value VarInt
	wire  []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{2, []byte{0x02}},
	{127, []byte{0x7F}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xFF, 0x01}},
	{25565, []byte{0xDD, 0xC7, 0x01}},
	{2097151, []byte{0xFF, 0xFF, 0x7F}},
	{2147483647, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
	{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
}

func TestVarIntAppend(t *testing.T) {
	for _, tc := range varIntVectors {
		require.Equal(t, tc.wire, tc.value.Append(nil), "value %d", tc.value)
		require.Equal(t, len(tc.wire), tc.value.Len(), "value %d", tc.value)
	}
}

func TestVarIntDecode(t *testing.T) {
	for _, tc := range varIntVectors {
		v, n, err := decodeVarInt(tc.wire)
		require.NoError(t, err, "value %d", tc.value)
		require.Equal(t, tc.value, v)
		require.Equal(t, len(tc.wire), n)
	}
}

func TestVarIntDecodeTrailing(t *testing.T) {
	// Decoding must stop at the terminator and report the consumed count.
	v, n, err := decodeVarInt([]byte{0x80, 0x01, 0xAA, 0xBB})
	require.NoError(t, err)
	require.Equal(t, VarInt(128), v)
	require.Equal(t, 2, n)
}

func TestVarIntDecodeTruncated(t *testing.T) {
	_, _, err := decodeVarInt([]byte{0x80, 0x80})
	require.ErrorIs(t, err, ErrUnexpectedEOF)

	_, _, err = decodeVarInt(nil)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestVarIntDecodeTooLarge(t *testing.T) {
	_, _, err := decodeVarInt([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	require.ErrorIs(t, err, ErrVarIntTooLarge)
}

func TestVarIntRoundTrip(t *testing.T) {
	for v := VarInt(-300); v <= 300; v++ {
		got, n, err := decodeVarInt(v.Append(nil))
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, v.Len(), n)
	}
}
