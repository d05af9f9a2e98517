package packets

import (
	"errors"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

var ErrUnknownPacket = errors.New("packets: id not registered for connection state")

// Handshake opens every connection: the client announces its protocol
// revision, the address it dialed, and the state it intends to enter.
type Handshake struct {
	ProtocolVersion codec.VarInt
	ServerAddress   string
	ServerPort      uint16
	Intent          codec.VarInt
}

func (*Handshake) ID() codec.VarInt {
	return IDHandshake
}

func (pk *Handshake) Read(r *codec.Reader) error {
	var err error

	if pk.ProtocolVersion, err = r.ReadVarInt(); err != nil {
		return err
	}

	if pk.ServerAddress, err = r.ReadString(); err != nil {
		return err
	}

	if pk.ServerPort, err = r.ReadUint16(); err != nil {
		return err
	}

	pk.Intent, err = r.ReadVarInt()

	return err
}

// NextState validates the requested intent against the states reachable from
// a handshake.
func (pk *Handshake) NextState() (protocol.ConnectionState, error) {
	return protocol.StateFromVarInt(pk.Intent)
}
