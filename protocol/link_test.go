package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l3ony/Pumpkin/protocol/codec"
)

func TestLinkTypeWire(t *testing.T) {
	// The wire integers are a fixed contract, not declaration order.
	wire := map[LinkType]byte{
		LinkBugReport:           0,
		LinkCommunityGuidelines: 1,
		LinkSupport:             2,
		LinkStatus:              3,
		LinkFeedback:            4,
		LinkCommunity:           5,
		LinkWebsite:             6,
		LinkForums:              7,
		LinkNews:                8,
		LinkAnnouncements:       9,
	}

	for lt, b := range wire {
		w := codec.NewWriter()
		lt.Write(w)
		require.Equal(t, []byte{b}, w.Bytes(), "link type %d", lt)

		got, err := ReadLinkType(codec.NewReader([]byte{b}))
		require.NoError(t, err)
		require.Equal(t, lt, got)
	}
}

func TestReadLinkTypeInvalid(t *testing.T) {
	_, err := ReadLinkType(codec.NewReader([]byte{10}))
	require.ErrorIs(t, err, ErrInvalidLinkType)

	_, err = ReadLinkType(codec.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}))
	require.ErrorIs(t, err, ErrInvalidLinkType)
}

func TestLabelConstructors(t *testing.T) {
	built := BuiltInLabel(LinkWebsite)
	require.True(t, built.IsBuiltIn())

	lt, ok := built.BuiltIn()
	require.True(t, ok)
	require.Equal(t, LinkWebsite, lt)

	_, ok = built.Text()
	require.False(t, ok)

	text := TextLabel(Text("Wiki"))
	require.False(t, text.IsBuiltIn())

	c, ok := text.Text()
	require.True(t, ok)
	require.Equal(t, "Wiki", c.Text)

	_, ok = text.BuiltIn()
	require.False(t, ok)
}

func TestNewLinkDerivesIsBuiltIn(t *testing.T) {
	require.True(t, NewLink(BuiltInLabel(LinkBugReport), "https://bugs.example").IsBuiltIn)
	require.False(t, NewLink(TextLabel(Text("Wiki")), "https://wiki.example").IsBuiltIn)
}

func TestLinkRoundTripBuiltIn(t *testing.T) {
	link := NewLink(BuiltInLabel(LinkForums), "https://forums.example")

	w := codec.NewWriter()
	link.Write(w)

	got, err := ReadLink(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.True(t, got.IsBuiltIn)
	require.Equal(t, "https://forums.example", got.URL)

	lt, ok := got.Label.BuiltIn()
	require.True(t, ok)
	require.Equal(t, LinkForums, lt)
}

func TestLinkRoundTripText(t *testing.T) {
	link := NewLink(TextLabel(TextComponent{Text: "Wiki", Style: Style{Color: "gold"}}), "https://wiki.example")

	w := codec.NewWriter()
	link.Write(w)

	got, err := ReadLink(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.False(t, got.IsBuiltIn)
	require.Equal(t, "https://wiki.example", got.URL)

	c, ok := got.Label.Text()
	require.True(t, ok)
	require.Equal(t, "Wiki", c.Text)
	require.Equal(t, "gold", c.Color)
}
