package codec

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// A Writer is an append-only sink for a packet body. Writes cannot fail;
// values reaching the encoder are well-formed by construction.
type Writer struct {
	ba []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated encoding. The slice aliases the writer's
// internal buffer.
func (w *Writer) Bytes() []byte {
	return w.ba
}

func (w *Writer) Len() int {
	return len(w.ba)
}

func (w *Writer) PutVarInt(v VarInt) {
	w.ba = v.Append(w.ba)
}

func (w *Writer) PutUint8(v uint8) {
	w.ba = append(w.ba, v)
}

func (w *Writer) PutBool(v bool) {
	if v {
		w.PutUint8(1)
		return
	}

	w.PutUint8(0)
}

func (w *Writer) PutUint16(v uint16) {
	w.ba = binary.BigEndian.AppendUint16(w.ba, v)
}

func (w *Writer) PutInt64(v int64) {
	w.ba = binary.BigEndian.AppendUint64(w.ba, uint64(v))
}

func (w *Writer) PutFloat32(v float32) {
	w.ba = binary.BigEndian.AppendUint32(w.ba, math.Float32bits(v))
}

func (w *Writer) PutFloat64(v float64) {
	w.ba = binary.BigEndian.AppendUint64(w.ba, math.Float64bits(v))
}

func (w *Writer) PutString(s string) {
	w.PutVarInt(VarInt(len(s)))
	w.ba = append(w.ba, s...)
}

func (w *Writer) PutIdentifier(id Identifier) {
	w.PutString(id.String())
}

func (w *Writer) PutUUID(id uuid.UUID) {
	w.ba = append(w.ba, id[:]...)
}

// PutBytes writes a varint length prefix followed by the raw bytes.
func (w *Writer) PutBytes(ba []byte) {
	w.PutVarInt(VarInt(len(ba)))
	w.ba = append(w.ba, ba...)
}

// PutRaw appends bytes with no length prefix.
func (w *Writer) PutRaw(ba []byte) {
	w.ba = append(w.ba, ba...)
}

// PutOption writes a bool presence marker and, when v is non-nil, the payload.
func PutOption[T any](w *Writer, v *T, put func(*Writer, T)) {
	w.PutBool(v != nil)

	if v != nil {
		put(w, *v)
	}
}
