package packets

import (
	"github.com/google/uuid"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// LoginStart begins authentication with the player's claimed identity.
type LoginStart struct {
	Name string
	UUID uuid.UUID
}

func (*LoginStart) ID() codec.VarInt {
	return IDLoginStart
}

func (pk *LoginStart) Read(r *codec.Reader) error {
	var err error

	if pk.Name, err = r.ReadString(); err != nil {
		return err
	}

	pk.UUID, err = r.ReadUUID()

	return err
}

// LoginSuccess finishes login and carries the resolved profile.
type LoginSuccess struct {
	UUID       uuid.UUID
	Username   string
	Properties []protocol.Property
}

func (*LoginSuccess) ID() codec.VarInt {
	return IDLoginSuccess
}

func (pk *LoginSuccess) Write(w *codec.Writer) {
	w.PutUUID(pk.UUID)
	w.PutString(pk.Username)
	w.PutVarInt(codec.VarInt(len(pk.Properties)))

	for _, p := range pk.Properties {
		p.Write(w)
	}
}

// LoginAck acknowledges LoginSuccess; receiving it moves the session into the
// config state. No payload.
type LoginAck struct{}

func (*LoginAck) ID() codec.VarInt {
	return IDLoginAck
}

func (*LoginAck) Read(*codec.Reader) error {
	return nil
}

// SetCompression tells the client the frame processor's compression
// threshold. Sent before LoginSuccess; a negative value disables compression.
type SetCompression struct {
	Threshold codec.VarInt
}

func NewSetCompression(t protocol.CompressionThreshold) *SetCompression {
	return &SetCompression{Threshold: codec.VarInt(t)}
}

func (*SetCompression) ID() codec.VarInt {
	return IDSetCompression
}

func (pk *SetCompression) Write(w *codec.Writer) {
	w.PutVarInt(pk.Threshold)
}

// LoginDisconnect rejects a login with a rich-text reason.
type LoginDisconnect struct {
	Reason protocol.TextComponent
}

func (*LoginDisconnect) ID() codec.VarInt {
	return IDLoginDisconnect
}

func (pk *LoginDisconnect) Write(w *codec.Writer) {
	pk.Reason.Write(w)
}

// LoginCookieRequest asks the client for a cookie previously stored under key.
type LoginCookieRequest struct {
	Key codec.Identifier
}

func (*LoginCookieRequest) ID() codec.VarInt {
	return IDLoginCookieRequest
}

func (pk *LoginCookieRequest) Write(w *codec.Writer) {
	w.PutIdentifier(pk.Key)
}

// LoginCookieResponse returns a stored cookie, or absence.
type LoginCookieResponse struct {
	Key     codec.Identifier
	Payload *[]byte
}

func (*LoginCookieResponse) ID() codec.VarInt {
	return IDLoginCookieResponse
}

func (pk *LoginCookieResponse) Read(r *codec.Reader) error {
	var err error

	if pk.Key, err = r.ReadIdentifier(); err != nil {
		return err
	}

	pk.Payload, err = codec.ReadOption(r, (*codec.Reader).ReadBytes)

	return err
}
