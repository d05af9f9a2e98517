package packets

import (
	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// ClientInformation carries the client's settings into the config state.
type ClientInformation struct {
	Locale             string
	ViewDistance       uint8
	ChatMode           codec.VarInt
	ChatColors         bool
	SkinParts          uint8
	MainHand           codec.VarInt
	TextFiltering      bool
	AllowServerListing bool
}

func (*ClientInformation) ID() codec.VarInt {
	return IDClientInformation
}

func (pk *ClientInformation) Read(r *codec.Reader) error {
	var err error

	if pk.Locale, err = r.ReadString(); err != nil {
		return err
	}

	if pk.ViewDistance, err = r.ReadUint8(); err != nil {
		return err
	}

	if pk.ChatMode, err = r.ReadVarInt(); err != nil {
		return err
	}

	if pk.ChatColors, err = r.ReadBool(); err != nil {
		return err
	}

	if pk.SkinParts, err = r.ReadUint8(); err != nil {
		return err
	}

	if pk.MainHand, err = r.ReadVarInt(); err != nil {
		return err
	}

	if pk.TextFiltering, err = r.ReadBool(); err != nil {
		return err
	}

	pk.AllowServerListing, err = r.ReadBool()

	return err
}

// ConfigCookieRequest asks the client for a stored cookie during config.
type ConfigCookieRequest struct {
	Key codec.Identifier
}

func (*ConfigCookieRequest) ID() codec.VarInt {
	return IDConfigCookieRequest
}

func (pk *ConfigCookieRequest) Write(w *codec.Writer) {
	w.PutIdentifier(pk.Key)
}

// ConfigCookieResponse returns a stored cookie, or absence.
type ConfigCookieResponse struct {
	Key     codec.Identifier
	Payload *[]byte
}

func (*ConfigCookieResponse) ID() codec.VarInt {
	return IDConfigCookieResponse
}

func (pk *ConfigCookieResponse) Read(r *codec.Reader) error {
	var err error

	if pk.Key, err = r.ReadIdentifier(); err != nil {
		return err
	}

	pk.Payload, err = codec.ReadOption(r, (*codec.Reader).ReadBytes)

	return err
}

// StoreCookie asks the client to persist a cookie for later retrieval, also
// across transfers to other hosts.
type StoreCookie struct {
	Key     codec.Identifier
	Payload []byte
}

func (*StoreCookie) ID() codec.VarInt {
	return IDStoreCookie
}

func (pk *StoreCookie) Write(w *codec.Writer) {
	w.PutIdentifier(pk.Key)
	w.PutBytes(pk.Payload)
}

// FinishConfig signals the client that configuration is complete. No payload.
type FinishConfig struct{}

func (*FinishConfig) ID() codec.VarInt {
	return IDFinishConfig
}

func (*FinishConfig) Write(*codec.Writer) {}

// AckFinishConfig acknowledges FinishConfig; receiving it moves the session
// into the play state. No payload.
type AckFinishConfig struct{}

func (*AckFinishConfig) ID() codec.VarInt {
	return IDAckFinishConfig
}

func (*AckFinishConfig) Read(*codec.Reader) error {
	return nil
}

// ConfigKeepAliveClientbound challenges the client to echo an ID in time.
type ConfigKeepAliveClientbound struct {
	Payload int64
}

func (*ConfigKeepAliveClientbound) ID() codec.VarInt {
	return IDConfigKeepAliveCB
}

func (pk *ConfigKeepAliveClientbound) Write(w *codec.Writer) {
	w.PutInt64(pk.Payload)
}

// ConfigKeepAliveServerbound is the echo of a config keep alive.
type ConfigKeepAliveServerbound struct {
	Payload int64
}

func (*ConfigKeepAliveServerbound) ID() codec.VarInt {
	return IDConfigKeepAliveSB
}

func (pk *ConfigKeepAliveServerbound) Read(r *codec.Reader) error {
	var err error
	pk.Payload, err = r.ReadInt64()

	return err
}

// ConfigDisconnect drops the client during config with a rich-text reason.
type ConfigDisconnect struct {
	Reason protocol.TextComponent
}

func (*ConfigDisconnect) ID() codec.VarInt {
	return IDConfigDisconnect
}

func (pk *ConfigDisconnect) Write(w *codec.Writer) {
	pk.Reason.Write(w)
}

// Transfer hands the client to another server. The cookie store survives the
// hop, which is how session continuity is carried across hosts.
type Transfer struct {
	Host string
	Port codec.VarInt
}

func (*Transfer) ID() codec.VarInt {
	return IDConfigTransfer
}

func (pk *Transfer) Write(w *codec.Writer) {
	w.PutString(pk.Host)
	w.PutVarInt(pk.Port)
}

// KnownPacksClientbound advertises the data packs the server can assume.
type KnownPacksClientbound struct {
	Packs []protocol.KnownPack
}

func (*KnownPacksClientbound) ID() codec.VarInt {
	return IDKnownPacksCB
}

func (pk *KnownPacksClientbound) Write(w *codec.Writer) {
	w.PutVarInt(codec.VarInt(len(pk.Packs)))

	for _, p := range pk.Packs {
		p.Write(w)
	}
}

// KnownPacksServerbound is the client's subset of the advertised packs.
type KnownPacksServerbound struct {
	Packs []protocol.KnownPack
}

func (*KnownPacksServerbound) ID() codec.VarInt {
	return IDKnownPacksSB
}

func (pk *KnownPacksServerbound) Read(r *codec.Reader) error {
	n, err := r.ReadVarInt()
	if err != nil {
		return err
	}

	if n < 0 {
		return codec.ErrNegativeLength
	}

	// Each pack costs at least three length-prefixed strings, so a count the
	// remaining bytes cannot possibly hold is malformed. Checking before the
	// allocation keeps a tiny payload from claiming a huge count.
	if int(n) > r.Remaining()/3 {
		return codec.ErrUnexpectedEOF
	}

	pk.Packs = make([]protocol.KnownPack, 0, n)

	for i := codec.VarInt(0); i < n; i++ {
		p, err := protocol.ReadKnownPack(r)
		if err != nil {
			return err
		}

		pk.Packs = append(pk.Packs, p)
	}

	return nil
}
