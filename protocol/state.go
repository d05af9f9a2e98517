package protocol

import (
	"errors"

	"github.com/l3ony/Pumpkin/protocol/codec"
)

// ConnectionState is the phase of a connection's lifecycle. Exactly one state
// is active per connection; the session owning the connection drives the
// transitions, this layer only validates a candidate parsed from a handshake.
type ConnectionState uint8

const (
	HandShake ConnectionState = iota
	Status
	Login
	Transfer
	Config
	Play
)

// ErrInvalidConnectionState is returned for a handshake intent outside
// {1, 2, 3}. The value is peer-controlled; the caller rejects the connection.
var ErrInvalidConnectionState = errors.New("protocol: invalid connection state")

// StateFromVarInt maps a handshake intent to its connection state.
// Only Status, Login and Transfer are reachable from the wire; HandShake is
// the implicit starting state and Config/Play are entered through in-protocol
// transitions, never through this integer.
func StateFromVarInt(v codec.VarInt) (ConnectionState, error) {
	switch v {
	case 1:
		return Status, nil
	case 2:
		return Login, nil
	case 3:
		return Transfer, nil
	default:
		return 0, ErrInvalidConnectionState
	}
}

func (s ConnectionState) String() string {
	switch s {
	case HandShake:
		return "handshake"
	case Status:
		return "status"
	case Login:
		return "login"
	case Transfer:
		return "transfer"
	case Config:
		return "config"
	case Play:
		return "play"
	}

	return "unknown"
}
