package netcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// testPacket is a minimal clientbound packet for exercising the frame layer.
type testPacket struct {
	id   codec.VarInt
	body string
}

func (p *testPacket) ID() codec.VarInt {
	return p.id
}

func (p *testPacket) Write(w *codec.Writer) {
	w.PutString(p.body)
}

func TestFrameRoundTripUncompressed(t *testing.T) {
	var buf bytes.Buffer

	fw := NewFrameWriter(&buf)
	require.NoError(t, fw.WritePacket(&testPacket{id: 0x42, body: "ping"}))

	fr := NewFrameReader(&buf)

	raw, err := fr.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(0x42), raw.ID)

	body, err := codec.NewReader(raw.Payload).ReadString()
	require.NoError(t, err)
	require.Equal(t, "ping", body)
}

func TestFrameUncompressedLayout(t *testing.T) {
	var buf bytes.Buffer

	fw := NewFrameWriter(&buf)
	require.NoError(t, fw.WritePacket(&testPacket{id: 0x01, body: "ab"}))

	// length(4) | id(0x01) | strlen(2) | "ab"
	require.Equal(t, []byte{0x04, 0x01, 0x02, 'a', 'b'}, buf.Bytes())
}

func TestFrameRoundTripBelowThreshold(t *testing.T) {
	var buf bytes.Buffer

	fw := NewFrameWriter(&buf)
	fw.EnableCompression(256, 6)

	require.NoError(t, fw.WritePacket(&testPacket{id: 0x07, body: "small"}))

	// Below the threshold the inner data length is zero and the body is raw.
	ba := buf.Bytes()
	require.Equal(t, byte(0x00), ba[1])

	fr := NewFrameReader(&buf)
	fr.EnableCompression()

	raw, err := fr.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(0x07), raw.ID)

	body, err := codec.NewReader(raw.Payload).ReadString()
	require.NoError(t, err)
	require.Equal(t, "small", body)
}

func TestFrameRoundTripCompressed(t *testing.T) {
	var buf bytes.Buffer

	fw := NewFrameWriter(&buf)
	fw.EnableCompression(16, 6)

	long := strings.Repeat("pumpkin ", 512)
	require.NoError(t, fw.WritePacket(&testPacket{id: 0x07, body: long}))

	// Compressible data above the threshold must come out smaller than the
	// raw encoding.
	require.Less(t, buf.Len(), len(long))

	fr := NewFrameReader(&buf)
	fr.EnableCompression()

	raw, err := fr.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(0x07), raw.ID)

	body, err := codec.NewReader(raw.Payload).ReadString()
	require.NoError(t, err)
	require.Equal(t, long, body)
}

func TestFrameSequence(t *testing.T) {
	var buf bytes.Buffer

	fw := NewFrameWriter(&buf)
	fw.EnableCompression(16, 1)

	require.NoError(t, fw.WritePacket(&testPacket{id: 0x01, body: "a"}))
	require.NoError(t, fw.WritePacket(&testPacket{id: 0x02, body: strings.Repeat("b", 64)}))
	require.NoError(t, fw.WritePacket(&testPacket{id: 0x03, body: "c"}))

	fr := NewFrameReader(&buf)
	fr.EnableCompression()

	for i, want := range []codec.VarInt{0x01, 0x02, 0x03} {
		raw, err := fr.ReadFrame()
		require.NoError(t, err, "frame %d", i)
		require.Equal(t, want, raw.ID)
	}
}

func TestWritePacketTooLarge(t *testing.T) {
	var buf bytes.Buffer

	fw := NewFrameWriter(&buf)

	err := fw.WritePacket(&testPacket{id: 0x01, body: strings.Repeat("x", protocol.MaxPacketSize)})
	require.ErrorIs(t, err, ErrFrameTooLarge)
	require.Zero(t, buf.Len())
}

func TestReadFrameTooLarge(t *testing.T) {
	w := codec.NewWriter()
	w.PutVarInt(codec.VarInt(protocol.MaxPacketSize + 1))

	fr := NewFrameReader(bytes.NewReader(w.Bytes()))

	_, err := fr.ReadFrame()
	require.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestReadFrameNegativeLength(t *testing.T) {
	fr := NewFrameReader(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}))

	_, err := fr.ReadFrame()
	require.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestReadFrameTruncated(t *testing.T) {
	fr := NewFrameReader(bytes.NewReader([]byte{0x05, 0x01}))

	_, err := fr.ReadFrame()
	require.Error(t, err)
}
