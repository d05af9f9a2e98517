package codec

import "errors"

// Decode failures surfaced by the cursor types. Callers must treat any of
// these as fatal for the frame being read.
var (
	ErrUnexpectedEOF     = errors.New("codec: unexpected end of buffer")
	ErrNegativeLength    = errors.New("codec: negative length prefix")
	ErrStringTooLarge    = errors.New("codec: string exceeds maximum length")
	ErrInvalidUTF8       = errors.New("codec: string is not valid utf-8")
	ErrInvalidIdentifier = errors.New("codec: malformed resource identifier")
)
