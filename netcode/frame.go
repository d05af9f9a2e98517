// Package netcode is the frame layer between the raw stream transport and the
// packet codec: varint length prefixes, optional zlib compression, and the
// per-connection read/write primitives the server's pumps drive.
package netcode

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

var (
	ErrFrameTooLarge = errors.New("netcode: frame exceeds maximum packet size")
	ErrBadFrame      = errors.New("netcode: malformed frame")
)

// A FrameWriter turns outbound packets into length-prefixed, optionally
// compressed frames. Compression is off until the login flow negotiates it.
type FrameWriter struct {
	w           io.Writer
	threshold   protocol.CompressionThreshold
	level       protocol.CompressionLevel
	compressing bool
}

func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w}
}

// EnableCompression switches the writer to the compressed frame format.
// Must be called after the SetCompression packet has been flushed.
func (fw *FrameWriter) EnableCompression(threshold protocol.CompressionThreshold, level protocol.CompressionLevel) {
	fw.threshold = threshold
	fw.level = level
	fw.compressing = true
}

// WritePacket encodes id + body and frames it onto the stream.
func (fw *FrameWriter) WritePacket(pk protocol.ClientPacket) error {
	body := codec.NewWriter()
	body.PutVarInt(pk.ID())
	pk.Write(body)

	frame, err := fw.frame(body.Bytes())
	if err != nil {
		return err
	}

	if len(frame) > protocol.MaxPacketSize {
		return tracerr.Wrap(ErrFrameTooLarge)
	}

	framesWritten.Inc()
	bytesWritten.Add(float64(len(frame)))

	_, err = fw.w.Write(frame)

	return tracerr.Wrap(err)
}

func (fw *FrameWriter) frame(data []byte) ([]byte, error) {
	if !fw.compressing {
		out := codec.NewWriter()
		out.PutVarInt(codec.VarInt(len(data)))
		out.PutRaw(data)

		return out.Bytes(), nil
	}

	packet := codec.NewWriter()

	if len(data) < int(fw.threshold) {
		// Below the threshold the data length field is zero and the
		// payload stays raw.
		packet.PutVarInt(0)
		packet.PutRaw(data)
	} else {
		var compressed bytes.Buffer

		zw, err := zlib.NewWriterLevel(&compressed, int(fw.level))
		if err != nil {
			return nil, tracerr.Wrap(err)
		}

		if _, err := zw.Write(data); err != nil {
			return nil, tracerr.Wrap(err)
		}

		if err := zw.Close(); err != nil {
			return nil, tracerr.Wrap(err)
		}

		packet.PutVarInt(codec.VarInt(len(data)))
		packet.PutRaw(compressed.Bytes())
		framesCompressed.Inc()
	}

	out := codec.NewWriter()
	out.PutVarInt(codec.VarInt(packet.Len()))
	out.PutRaw(packet.Bytes())

	return out.Bytes(), nil
}

// A FrameReader pulls frames off the stream and yields raw packets. Any error
// is fatal for the connection; the reader makes no attempt to resynchronize.
type FrameReader struct {
	r           *bufio.Reader
	compressing bool
}

func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: bufio.NewReader(r)}
}

// EnableCompression switches the reader to the compressed frame format.
func (fr *FrameReader) EnableCompression() {
	fr.compressing = true
}

// ReadFrame reads one frame and splits it into id + payload.
func (fr *FrameReader) ReadFrame() (protocol.RawPacket, error) {
	length, err := readVarInt(fr.r)
	if err != nil {
		framesRejected.Inc()
		return protocol.RawPacket{}, err
	}

	if length < 0 || int(length) > protocol.MaxPacketSize {
		framesRejected.Inc()
		return protocol.RawPacket{}, tracerr.Wrap(ErrFrameTooLarge)
	}

	frame := make([]byte, length)
	if _, err := io.ReadFull(fr.r, frame); err != nil {
		framesRejected.Inc()
		return protocol.RawPacket{}, tracerr.Wrap(err)
	}

	if fr.compressing {
		frame, err = fr.inflate(frame)
		if err != nil {
			framesRejected.Inc()
			return protocol.RawPacket{}, err
		}
	}

	r := codec.NewReader(frame)

	id, err := r.ReadVarInt()
	if err != nil {
		framesRejected.Inc()
		return protocol.RawPacket{}, tracerr.Wrap(err)
	}

	framesRead.Inc()
	bytesRead.Add(float64(length))

	return protocol.RawPacket{ID: id, Payload: r.ReadRemaining()}, nil
}

func (fr *FrameReader) inflate(frame []byte) ([]byte, error) {
	r := codec.NewReader(frame)

	dataLen, err := r.ReadVarInt()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	rest := r.ReadRemaining()

	if dataLen == 0 {
		return rest, nil
	}

	if dataLen < 0 || int(dataLen) > protocol.MaxPacketSize {
		return nil, tracerr.Wrap(ErrFrameTooLarge)
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer zr.Close()

	data := make([]byte, dataLen)
	if _, err := io.ReadFull(zr, data); err != nil {
		return nil, tracerr.Wrap(err)
	}

	return data, nil
}

// readVarInt decodes a varint byte by byte off the stream, since the frame
// length is not itself length-prefixed.
func readVarInt(r io.ByteReader) (codec.VarInt, error) {
	var value uint32

	for i := 0; i < codec.VarIntMaxLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, tracerr.Wrap(err)
		}

		value |= uint32(b&0x7F) << (7 * i)

		if b&0x80 == 0 {
			return codec.VarInt(value), nil
		}
	}

	return 0, tracerr.Wrap(codec.ErrVarIntTooLarge)
}
