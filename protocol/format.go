package protocol

import (
	"errors"

	"github.com/l3ony/Pumpkin/protocol/codec"
)

// NumberFormat controls how a score number is rendered: hidden, restyled, or
// replaced by placeholder text. Exactly one case is written per value, tagged
// with a varint discriminant.
type NumberFormat struct {
	tag   codec.VarInt
	style *Style
	text  *TextComponent
}

const (
	formatBlank codec.VarInt = iota
	formatStyled
	formatFixed
)

var ErrInvalidNumberFormat = errors.New("protocol: invalid number format discriminant")

// BlankFormat shows nothing.
func BlankFormat() NumberFormat {
	return NumberFormat{tag: formatBlank}
}

// StyledFormat renders the number with the given style.
func StyledFormat(s Style) NumberFormat {
	return NumberFormat{tag: formatStyled, style: &s}
}

// FixedFormat replaces the number with placeholder text.
func FixedFormat(c TextComponent) NumberFormat {
	return NumberFormat{tag: formatFixed, text: &c}
}

func (f NumberFormat) Write(w *codec.Writer) {
	w.PutVarInt(f.tag)

	switch f.tag {
	case formatStyled:
		f.style.write(w)
	case formatFixed:
		f.text.Write(w)
	}
}

func ReadNumberFormat(r *codec.Reader) (NumberFormat, error) {
	tag, err := r.ReadVarInt()
	if err != nil {
		return NumberFormat{}, err
	}

	switch tag {
	case formatBlank:
		return BlankFormat(), nil
	case formatStyled:
		s, err := readStyle(r)
		if err != nil {
			return NumberFormat{}, err
		}

		return StyledFormat(s), nil
	case formatFixed:
		c, err := ReadTextComponent(r)
		if err != nil {
			return NumberFormat{}, err
		}

		return FixedFormat(c), nil
	default:
		return NumberFormat{}, ErrInvalidNumberFormat
	}
}

// Style returns the styling directive for a styled format.
func (f NumberFormat) Styled() (Style, bool) {
	if f.tag != formatStyled {
		return Style{}, false
	}

	return *f.style, true
}

// Fixed returns the placeholder text for a fixed format.
func (f NumberFormat) Fixed() (TextComponent, bool) {
	if f.tag != formatFixed {
		return TextComponent{}, false
	}

	return *f.text, true
}

// Blank reports whether the format hides the number entirely.
func (f NumberFormat) Blank() bool {
	return f.tag == formatBlank
}
