package protocol

import (
	"errors"

	"github.com/l3ony/Pumpkin/protocol/codec"
)

// LinkType is the closed set of built-in link categories a server may
// advertise.
type LinkType uint8

const (
	LinkBugReport LinkType = iota
	LinkCommunityGuidelines
	LinkSupport
	LinkStatus
	LinkFeedback
	LinkCommunity
	LinkWebsite
	LinkForums
	LinkNews
	LinkAnnouncements
)

var ErrInvalidLinkType = errors.New("protocol: invalid link type discriminant")

// The wire integer of each category is assigned explicitly so that reordering
// or extending the constants above never changes the wire contract.
func (t LinkType) Write(w *codec.Writer) {
	switch t {
	case LinkBugReport:
		w.PutVarInt(0)
	case LinkCommunityGuidelines:
		w.PutVarInt(1)
	case LinkSupport:
		w.PutVarInt(2)
	case LinkStatus:
		w.PutVarInt(3)
	case LinkFeedback:
		w.PutVarInt(4)
	case LinkCommunity:
		w.PutVarInt(5)
	case LinkWebsite:
		w.PutVarInt(6)
	case LinkForums:
		w.PutVarInt(7)
	case LinkNews:
		w.PutVarInt(8)
	case LinkAnnouncements:
		w.PutVarInt(9)
	}
}

func ReadLinkType(r *codec.Reader) (LinkType, error) {
	v, err := r.ReadVarInt()
	if err != nil {
		return 0, err
	}

	switch v {
	case 0:
		return LinkBugReport, nil
	case 1:
		return LinkCommunityGuidelines, nil
	case 2:
		return LinkSupport, nil
	case 3:
		return LinkStatus, nil
	case 4:
		return LinkFeedback, nil
	case 5:
		return LinkCommunity, nil
	case 6:
		return LinkWebsite, nil
	case 7:
		return LinkForums, nil
	case 8:
		return LinkNews, nil
	case 9:
		return LinkAnnouncements, nil
	default:
		return 0, ErrInvalidLinkType
	}
}

// A Label is either a built-in category or free-form rich text. The encoding
// carries no discriminant of its own; the IsBuiltIn flag of the containing
// Link is the only signal a reader has, which is why labels can only be built
// through the two constructors below.
type Label struct {
	builtIn *LinkType
	text    *TextComponent
}

func BuiltInLabel(t LinkType) Label {
	return Label{builtIn: &t}
}

func TextLabel(c TextComponent) Label {
	return Label{text: &c}
}

func (l Label) IsBuiltIn() bool {
	return l.builtIn != nil
}

// BuiltIn returns the category for a built-in label.
func (l Label) BuiltIn() (LinkType, bool) {
	if l.builtIn == nil {
		return 0, false
	}

	return *l.builtIn, true
}

// Text returns the component for a free-form label.
func (l Label) Text() (TextComponent, bool) {
	if l.text == nil {
		return TextComponent{}, false
	}

	return *l.text, true
}

func (l Label) Write(w *codec.Writer) {
	if l.builtIn != nil {
		l.builtIn.Write(w)
		return
	}

	l.text.Write(w)
}

// A Link is a URL with a display label. IsBuiltIn records which label case is
// active; it is derived in NewLink and never settable independently.
type Link struct {
	IsBuiltIn bool
	Label     Label
	URL       string
}

func NewLink(label Label, url string) Link {
	return Link{
		IsBuiltIn: label.IsBuiltIn(),
		Label:     label,
		URL:       url,
	}
}

func (l Link) Write(w *codec.Writer) {
	w.PutBool(l.IsBuiltIn)
	l.Label.Write(w)
	w.PutString(l.URL)
}

func ReadLink(r *codec.Reader) (Link, error) {
	builtIn, err := r.ReadBool()
	if err != nil {
		return Link{}, err
	}

	var label Label

	if builtIn {
		t, err := ReadLinkType(r)
		if err != nil {
			return Link{}, err
		}

		label = BuiltInLabel(t)
	} else {
		c, err := ReadTextComponent(r)
		if err != nil {
			return Link{}, err
		}

		label = TextLabel(c)
	}

	url, err := r.ReadString()
	if err != nil {
		return Link{}, err
	}

	return NewLink(label, url), nil
}
