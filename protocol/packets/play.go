package packets

import (
	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// PlayKeepAliveClientbound challenges the client to echo an ID in time.
type PlayKeepAliveClientbound struct {
	Payload int64
}

func (*PlayKeepAliveClientbound) ID() codec.VarInt {
	return IDPlayKeepAliveCB
}

func (pk *PlayKeepAliveClientbound) Write(w *codec.Writer) {
	w.PutInt64(pk.Payload)
}

// PlayKeepAliveServerbound is the echo of a play keep alive.
type PlayKeepAliveServerbound struct {
	Payload int64
}

func (*PlayKeepAliveServerbound) ID() codec.VarInt {
	return IDPlayKeepAliveSB
}

func (pk *PlayKeepAliveServerbound) Read(r *codec.Reader) error {
	var err error
	pk.Payload, err = r.ReadInt64()

	return err
}

// PlayerPosition reports the player's absolute position.
type PlayerPosition struct {
	X        float64
	Y        float64
	Z        float64
	OnGround bool
}

func (*PlayerPosition) ID() codec.VarInt {
	return IDPlayerPosition
}

func (pk *PlayerPosition) Read(r *codec.Reader) error {
	var err error

	if pk.X, err = r.ReadFloat64(); err != nil {
		return err
	}

	if pk.Y, err = r.ReadFloat64(); err != nil {
		return err
	}

	if pk.Z, err = r.ReadFloat64(); err != nil {
		return err
	}

	pk.OnGround, err = r.ReadBool()

	return err
}

// SyncPosition teleports the player. Flags packs which fields the client must
// treat as relative offsets; see protocol.Bitfield.
type SyncPosition struct {
	TeleportID codec.VarInt
	X          float64
	Y          float64
	Z          float64
	Yaw        float32
	Pitch      float32
	Flags      []protocol.PositionFlag
}

func (*SyncPosition) ID() codec.VarInt {
	return IDSyncPosition
}

func (pk *SyncPosition) Write(w *codec.Writer) {
	w.PutVarInt(pk.TeleportID)
	w.PutFloat64(pk.X)
	w.PutFloat64(pk.Y)
	w.PutFloat64(pk.Z)
	w.PutFloat32(pk.Yaw)
	w.PutFloat32(pk.Pitch)
	w.PutVarInt(codec.VarInt(protocol.Bitfield(pk.Flags)))
}

// SoundEffect plays a sound at a position, either by registry reference or as
// an inline definition.
type SoundEffect struct {
	Sound    protocol.IDOrSoundEvent
	Category codec.VarInt
	X        float64
	Y        float64
	Z        float64
	Volume   float32
	Pitch    float32
	Seed     int64
}

func (*SoundEffect) ID() codec.VarInt {
	return IDSoundEffect
}

func (pk *SoundEffect) Write(w *codec.Writer) {
	pk.Sound.Write(w)
	w.PutVarInt(pk.Category)
	w.PutFloat64(pk.X)
	w.PutFloat64(pk.Y)
	w.PutFloat64(pk.Z)
	w.PutFloat32(pk.Volume)
	w.PutFloat32(pk.Pitch)
	w.PutInt64(pk.Seed)
}

// UpdateScore sets a scoreboard entry, optionally overriding how its number
// renders.
type UpdateScore struct {
	EntityName  string
	Objective   string
	Value       codec.VarInt
	DisplayName *protocol.TextComponent
	Format      *protocol.NumberFormat
}

func (*UpdateScore) ID() codec.VarInt {
	return IDUpdateScore
}

func (pk *UpdateScore) Write(w *codec.Writer) {
	w.PutString(pk.EntityName)
	w.PutString(pk.Objective)
	w.PutVarInt(pk.Value)
	codec.PutOption(w, pk.DisplayName, func(w *codec.Writer, c protocol.TextComponent) { c.Write(w) })
	codec.PutOption(w, pk.Format, func(w *codec.Writer, f protocol.NumberFormat) { f.Write(w) })
}

// ServerLinks advertises the server's link list on the pause screen.
type ServerLinks struct {
	Links []protocol.Link
}

func (*ServerLinks) ID() codec.VarInt {
	return IDServerLinks
}

func (pk *ServerLinks) Write(w *codec.Writer) {
	w.PutVarInt(codec.VarInt(len(pk.Links)))

	for _, l := range pk.Links {
		l.Write(w)
	}
}

// PlayTransfer hands a playing client to another server. Same shape as the
// config-state transfer, different ID space.
type PlayTransfer struct {
	Host string
	Port codec.VarInt
}

func (*PlayTransfer) ID() codec.VarInt {
	return IDPlayTransfer
}

func (pk *PlayTransfer) Write(w *codec.Writer) {
	w.PutString(pk.Host)
	w.PutVarInt(pk.Port)
}

// PlayDisconnect drops the client during play with a rich-text reason.
type PlayDisconnect struct {
	Reason protocol.TextComponent
}

func (*PlayDisconnect) ID() codec.VarInt {
	return IDPlayDisconnect
}

func (pk *PlayDisconnect) Write(w *codec.Writer) {
	pk.Reason.Write(w)
}
