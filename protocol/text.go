package protocol

import (
	"encoding/json"

	"github.com/l3ony/Pumpkin/protocol/codec"
)

// Style carries the formatting applied to a text component or a score number.
type Style struct {
	Color         string `json:"color,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underlined    bool   `json:"underlined,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Obfuscated    bool   `json:"obfuscated,omitempty"`
}

// A TextComponent is a free-form rich text value. Rich-text composition
// (translations, events, child components) belongs to a higher layer; on the
// wire this layer carries the JSON form as a string.
type TextComponent struct {
	Text string `json:"text"`
	Style
}

func Text(s string) TextComponent {
	return TextComponent{Text: s}
}

func (c TextComponent) Write(w *codec.Writer) {
	// Marshalling a flat struct cannot fail; outbound encoding stays infallible.
	ba, _ := json.Marshal(c)
	w.PutBytes(ba)
}

func ReadTextComponent(r *codec.Reader) (TextComponent, error) {
	ba, err := r.ReadBytes()
	if err != nil {
		return TextComponent{}, err
	}

	var c TextComponent
	if err := json.Unmarshal(ba, &c); err != nil {
		return TextComponent{}, err
	}

	return c, nil
}

func (s Style) write(w *codec.Writer) {
	ba, _ := json.Marshal(s)
	w.PutBytes(ba)
}

func readStyle(r *codec.Reader) (Style, error) {
	ba, err := r.ReadBytes()
	if err != nil {
		return Style{}, err
	}

	var s Style
	if err := json.Unmarshal(ba, &s); err != nil {
		return Style{}, err
	}

	return s, nil
}
