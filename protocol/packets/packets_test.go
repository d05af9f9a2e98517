package packets

import (
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

func TestLoginStartRead(t *testing.T) {
	id := uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")

	w := codec.NewWriter()
	w.PutString("notch")
	w.PutUUID(id)

	var pk LoginStart
	require.NoError(t, pk.Read(codec.NewReader(w.Bytes())))
	require.Equal(t, "notch", pk.Name)
	require.Equal(t, id, pk.UUID)
}

func TestLoginSuccessWrite(t *testing.T) {
	id := uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	sig := "c2ln"

	pk := LoginSuccess{
		UUID:     id,
		Username: "notch",
		Properties: []protocol.Property{
			{Name: "textures", Value: "dGV4", Signature: &sig},
		},
	}

	w := codec.NewWriter()
	pk.Write(w)

	r := codec.NewReader(w.Bytes())

	gotID, err := r.ReadUUID()
	require.NoError(t, err)
	require.Equal(t, id, gotID)

	name, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "notch", name)

	n, err := r.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(1), n)

	prop, err := protocol.ReadProperty(r)
	require.NoError(t, err)
	require.Equal(t, pk.Properties[0], prop)
	require.Equal(t, 0, r.Remaining())
}

func TestSetCompressionFromThreshold(t *testing.T) {
	pk := NewSetCompression(protocol.CompressionThreshold(256))
	require.Equal(t, codec.VarInt(256), pk.Threshold)

	w := codec.NewWriter()
	pk.Write(w)
	require.Equal(t, []byte{0x80, 0x02}, w.Bytes())
}

func TestLoginCookieResponseRead(t *testing.T) {
	w := codec.NewWriter()
	w.PutIdentifier(codec.Vanilla("session"))
	w.PutBool(true)
	w.PutBytes([]byte{0xDE, 0xAD})

	var pk LoginCookieResponse
	require.NoError(t, pk.Read(codec.NewReader(w.Bytes())))
	require.Equal(t, codec.Vanilla("session"), pk.Key)
	require.NotNil(t, pk.Payload)
	require.Equal(t, []byte{0xDE, 0xAD}, *pk.Payload)

	w = codec.NewWriter()
	w.PutIdentifier(codec.Vanilla("session"))
	w.PutBool(false)

	pk = LoginCookieResponse{}
	require.NoError(t, pk.Read(codec.NewReader(w.Bytes())))
	require.Nil(t, pk.Payload)
}

func TestClientInformationRead(t *testing.T) {
	w := codec.NewWriter()
	w.PutString("en_us")
	w.PutUint8(12)
	w.PutVarInt(0)
	w.PutBool(true)
	w.PutUint8(0x7F)
	w.PutVarInt(1)
	w.PutBool(false)
	w.PutBool(true)

	var pk ClientInformation
	require.NoError(t, pk.Read(codec.NewReader(w.Bytes())))
	require.Equal(t, "en_us", pk.Locale)
	require.Equal(t, uint8(12), pk.ViewDistance)
	require.Equal(t, codec.VarInt(0), pk.ChatMode)
	require.True(t, pk.ChatColors)
	require.Equal(t, uint8(0x7F), pk.SkinParts)
	require.Equal(t, codec.VarInt(1), pk.MainHand)
	require.False(t, pk.TextFiltering)
	require.True(t, pk.AllowServerListing)
}

func TestKnownPacksRoundTrip(t *testing.T) {
	out := KnownPacksClientbound{
		Packs: []protocol.KnownPack{
			{Namespace: "minecraft", ID: "core", Version: "1.21.4"},
			{Namespace: "pumpkin", ID: "extras", Version: "1"},
		},
	}

	w := codec.NewWriter()
	out.Write(w)

	// The serverbound shape mirrors the clientbound one.
	var in KnownPacksServerbound
	require.NoError(t, in.Read(codec.NewReader(w.Bytes())))
	require.Equal(t, out.Packs, in.Packs)
}

func TestKnownPacksNegativeCount(t *testing.T) {
	var in KnownPacksServerbound
	err := in.Read(codec.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}))
	require.ErrorIs(t, err, codec.ErrNegativeLength)
}

func TestKnownPacksOverclaimedCount(t *testing.T) {
	// A tiny payload claiming a huge pack count must be rejected up front,
	// before any slice is sized from the claimed count.
	w := codec.NewWriter()
	w.PutVarInt(64 << 20)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	var in KnownPacksServerbound
	err := in.Read(codec.NewReader(w.Bytes()))
	require.ErrorIs(t, err, codec.ErrUnexpectedEOF)

	runtime.ReadMemStats(&after)
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestKnownPacksCountBarelyTooLarge(t *testing.T) {
	// Two packs of empty strings occupy six bytes; claiming three is one too
	// many for the same payload.
	w := codec.NewWriter()
	w.PutVarInt(3)
	for i := 0; i < 6; i++ {
		w.PutUint8(0)
	}

	var in KnownPacksServerbound
	require.ErrorIs(t, in.Read(codec.NewReader(w.Bytes())), codec.ErrUnexpectedEOF)

	w = codec.NewWriter()
	w.PutVarInt(2)
	for i := 0; i < 6; i++ {
		w.PutUint8(0)
	}

	in = KnownPacksServerbound{}
	require.NoError(t, in.Read(codec.NewReader(w.Bytes())))
	require.Len(t, in.Packs, 2)
}

func TestSyncPositionFlagsTail(t *testing.T) {
	pk := SyncPosition{
		TeleportID: 7,
		X:          1, Y: 2, Z: 3,
		Yaw: 90, Pitch: -45,
		Flags: []protocol.PositionFlag{protocol.FlagX, protocol.FlagRotateDelta},
	}

	w := codec.NewWriter()
	pk.Write(w)

	r := codec.NewReader(w.Bytes())

	id, err := r.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(7), id)

	for i := 0; i < 3; i++ {
		_, err = r.ReadFloat64()
		require.NoError(t, err)
	}

	for i := 0; i < 2; i++ {
		_, err = r.ReadFloat32()
		require.NoError(t, err)
	}

	mask, err := r.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(protocol.Bitfield(pk.Flags)), mask)
	require.Equal(t, 0, r.Remaining())
}

func TestPlayerPositionRead(t *testing.T) {
	w := codec.NewWriter()
	w.PutFloat64(100.5)
	w.PutFloat64(64)
	w.PutFloat64(-12.25)
	w.PutBool(true)

	var pk PlayerPosition
	require.NoError(t, pk.Read(codec.NewReader(w.Bytes())))
	require.Equal(t, 100.5, pk.X)
	require.Equal(t, float64(64), pk.Y)
	require.Equal(t, -12.25, pk.Z)
	require.True(t, pk.OnGround)
}

func TestUpdateScoreWriteOptions(t *testing.T) {
	display := protocol.Text("Kills")
	format := protocol.BlankFormat()

	pk := UpdateScore{
		EntityName:  "notch",
		Objective:   "kills",
		Value:       3,
		DisplayName: &display,
		Format:      &format,
	}

	w := codec.NewWriter()
	pk.Write(w)

	r := codec.NewReader(w.Bytes())

	name, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "notch", name)

	obj, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "kills", obj)

	v, err := r.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(3), v)

	gotDisplay, err := codec.ReadOption(r, protocol.ReadTextComponent)
	require.NoError(t, err)
	require.NotNil(t, gotDisplay)
	require.Equal(t, "Kills", gotDisplay.Text)

	gotFormat, err := codec.ReadOption(r, protocol.ReadNumberFormat)
	require.NoError(t, err)
	require.NotNil(t, gotFormat)
	require.True(t, gotFormat.Blank())
	require.Equal(t, 0, r.Remaining())
}

func TestServerLinksWrite(t *testing.T) {
	pk := ServerLinks{
		Links: []protocol.Link{
			protocol.NewLink(protocol.BuiltInLabel(protocol.LinkBugReport), "https://bugs.example"),
			protocol.NewLink(protocol.TextLabel(protocol.Text("Wiki")), "https://wiki.example"),
		},
	}

	w := codec.NewWriter()
	pk.Write(w)

	r := codec.NewReader(w.Bytes())

	n, err := r.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(2), n)

	first, err := protocol.ReadLink(r)
	require.NoError(t, err)
	require.True(t, first.IsBuiltIn)

	second, err := protocol.ReadLink(r)
	require.NoError(t, err)
	require.False(t, second.IsBuiltIn)
	require.Equal(t, "https://wiki.example", second.URL)
	require.Equal(t, 0, r.Remaining())
}

func TestTransferWrite(t *testing.T) {
	pk := Transfer{Host: "other.example.net", Port: 25566}

	w := codec.NewWriter()
	pk.Write(w)

	r := codec.NewReader(w.Bytes())

	host, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "other.example.net", host)

	port, err := r.ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, codec.VarInt(25566), port)
}
