package codec

import (
	"errors"
)

// A VarInt is a signed 32-bit integer encoded as 7-bit groups with a
// continuation bit, least significant group first.
type VarInt int32

const (
	segmentBits = 0x7F
	continueBit = 0x80

	// VarIntMaxLen is the most bytes a VarInt may occupy on the wire.
	VarIntMaxLen = 5
)

var ErrVarIntTooLarge = errors.New("codec: varint is longer than five bytes")

// Len reports how many bytes the VarInt occupies once encoded.
func (v VarInt) Len() int {
	n := 1
	for u := uint32(v); u >= continueBit; u >>= 7 {
		n++
	}
	return n
}

// Append appends the wire encoding of v to dst.
func (v VarInt) Append(dst []byte) []byte {
	u := uint32(v)
	for u >= continueBit {
		dst = append(dst, byte(u&segmentBits)|continueBit)
		u >>= 7
	}
	return append(dst, byte(u))
}

// decodeVarInt reads a VarInt from the front of ba.
// It returns the value and the number of bytes consumed.
func decodeVarInt(ba []byte) (VarInt, int, error) {
	var value uint32

	for i := 0; i < VarIntMaxLen; i++ {
		if i >= len(ba) {
			return 0, 0, ErrUnexpectedEOF
		}

		b := ba[i]
		value |= uint32(b&segmentBits) << (7 * i)

		if b&continueBit == 0 {
			return VarInt(value), i + 1, nil
		}
	}

	return 0, 0, ErrVarIntTooLarge
}
