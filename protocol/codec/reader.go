package codec

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxStringLen bounds the character count of an encoded string.
const MaxStringLen = 32767

// A Reader is a cursor over a received packet body. All reads are bounds
// checked; once any read fails the whole frame must be discarded, the cursor
// position is not recoverable.
type Reader struct {
	ba  []byte
	off int
}

func NewReader(ba []byte) *Reader {
	return &Reader{ba: ba}
}

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int {
	return len(r.ba) - r.off
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}

	ba := r.ba[r.off : r.off+n]
	r.off += n

	return ba, nil
}

func (r *Reader) ReadVarInt() (VarInt, error) {
	v, n, err := decodeVarInt(r.ba[r.off:])
	if err != nil {
		return 0, err
	}

	r.off += n

	return v, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	ba, err := r.take(1)
	if err != nil {
		return 0, err
	}

	return ba[0], nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	ba, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(ba), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	ba, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(ba)), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	ba, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(binary.BigEndian.Uint32(ba)), nil
}

func (r *Reader) ReadFloat64() (float64, error) {
	ba, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.BigEndian.Uint64(ba)), nil
}

func (r *Reader) ReadString() (string, error) {
	return r.readString(MaxStringLen)
}

func (r *Reader) readString(maxLen int) (string, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return "", err
	}

	if n < 0 {
		return "", ErrNegativeLength
	}

	if int(n) > maxLen*4 {
		return "", ErrStringTooLarge
	}

	ba, err := r.take(int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(ba) {
		return "", ErrInvalidUTF8
	}

	if utf8.RuneCount(ba) > maxLen {
		return "", ErrStringTooLarge
	}

	return string(ba), nil
}

func (r *Reader) ReadIdentifier() (Identifier, error) {
	s, err := r.readString(MaxIdentifierLen)
	if err != nil {
		return Identifier{}, err
	}

	return ParseIdentifier(s)
}

func (r *Reader) ReadUUID() (uuid.UUID, error) {
	ba, err := r.take(16)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.FromBytes(ba)
}

// ReadBytes reads a varint length prefix followed by that many raw bytes.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, ErrNegativeLength
	}

	ba, err := r.take(int(n))
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(ba))
	copy(out, ba)

	return out, nil
}

// ReadRemaining consumes and returns everything left in the cursor.
func (r *Reader) ReadRemaining() []byte {
	ba, _ := r.take(r.Remaining())

	out := make([]byte, len(ba))
	copy(out, ba)

	return out
}

// ReadOption reads a bool presence marker and, when set, the payload.
func ReadOption[T any](r *Reader, read func(*Reader) (T, error)) (*T, error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	if !present {
		return nil, nil
	}

	v, err := read(r)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
