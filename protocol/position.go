package protocol

// PositionFlag names one axis of a player teleport that may be treated as a
// relative offset instead of an absolute value. Each flag owns one exclusive
// bit of the 32-bit mask; the downstream interpretation of the mask is not
// this layer's concern.
type PositionFlag uint8

const (
	FlagX PositionFlag = iota
	FlagY
	FlagZ
	FlagYRot
	FlagXRot
	FlagDeltaX
	FlagDeltaY
	FlagDeltaZ
	FlagRotateDelta
)

// Mask returns the flag's exclusive bit.
func (f PositionFlag) Mask() int32 {
	switch f {
	case FlagX:
		return 1 << 0
	case FlagY:
		return 1 << 1
	case FlagZ:
		return 1 << 2
	case FlagYRot:
		return 1 << 3
	case FlagXRot:
		return 1 << 4
	case FlagDeltaX:
		return 1 << 5
	case FlagDeltaY:
		return 1 << 6
	case FlagDeltaZ:
		return 1 << 7
	case FlagRotateDelta:
		return 1 << 8
	}

	return 0
}

// Bitfield folds a set of flags into one mask. Duplicates are idempotent and
// order does not matter; the empty set packs to zero.
func Bitfield(flags []PositionFlag) int32 {
	var mask int32

	for _, f := range flags {
		mask |= f.Mask()
	}

	return mask
}

// HasFlag reports whether the flag's bit is set in mask.
func HasFlag(mask int32, f PositionFlag) bool {
	return mask&f.Mask() != 0
}
