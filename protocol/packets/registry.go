// Package packets holds the concrete packet catalogue and the identity
// registry that scopes numeric packet IDs to (direction, connection state).
package packets

import (
	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// Direction tells which peer a packet is bound to.
type Direction uint8

const (
	// Clientbound packets are written by the server.
	Clientbound Direction = iota
	// Serverbound packets are read from the client.
	Serverbound
)

func (d Direction) String() string {
	switch d {
	case Clientbound:
		return "clientbound"
	case Serverbound:
		return "serverbound"
	}

	return "unknown"
}

// The registry tables below are the wire contract for packet identity.
// IDs are assigned here explicitly, never derived from type declaration
// order, so shuffling the catalogue files can't change the protocol.
const (
	// Serverbound, handshake state.
	IDHandshake codec.VarInt = 0x00

	// Serverbound, status state.
	IDStatusRequest codec.VarInt = 0x00
	IDPingRequest   codec.VarInt = 0x01

	// Clientbound, status state.
	IDStatusResponse codec.VarInt = 0x00
	IDPongResponse   codec.VarInt = 0x01

	// Serverbound, login state.
	IDLoginStart          codec.VarInt = 0x00
	IDLoginAck            codec.VarInt = 0x03
	IDLoginCookieResponse codec.VarInt = 0x04

	// Clientbound, login state.
	IDLoginDisconnect    codec.VarInt = 0x00
	IDLoginSuccess       codec.VarInt = 0x02
	IDSetCompression     codec.VarInt = 0x03
	IDLoginCookieRequest codec.VarInt = 0x05

	// Serverbound, config state.
	IDClientInformation    codec.VarInt = 0x00
	IDConfigCookieResponse codec.VarInt = 0x01
	IDAckFinishConfig      codec.VarInt = 0x03
	IDConfigKeepAliveSB    codec.VarInt = 0x04
	IDKnownPacksSB         codec.VarInt = 0x07

	// Clientbound, config state.
	IDConfigCookieRequest codec.VarInt = 0x00
	IDConfigDisconnect    codec.VarInt = 0x02
	IDFinishConfig        codec.VarInt = 0x03
	IDConfigKeepAliveCB   codec.VarInt = 0x04
	IDStoreCookie         codec.VarInt = 0x0A
	IDConfigTransfer      codec.VarInt = 0x0B
	IDKnownPacksCB        codec.VarInt = 0x0E

	// Serverbound, play state.
	IDPlayKeepAliveSB codec.VarInt = 0x1A
	IDPlayerPosition  codec.VarInt = 0x1C

	// Clientbound, play state.
	IDPlayDisconnect  codec.VarInt = 0x1D
	IDPlayKeepAliveCB codec.VarInt = 0x27
	IDSyncPosition    codec.VarInt = 0x42
	IDUpdateScore     codec.VarInt = 0x61
	IDSoundEffect     codec.VarInt = 0x68
	IDPlayTransfer    codec.VarInt = 0x73
	IDServerLinks     codec.VarInt = 0x7B
)

// serverbound maps (state, id) to a constructor for the typed decode step.
var serverbound = map[protocol.ConnectionState]map[codec.VarInt]func() protocol.ServerPacket{
	protocol.HandShake: {
		IDHandshake: func() protocol.ServerPacket { return &Handshake{} },
	},
	protocol.Status: {
		IDStatusRequest: func() protocol.ServerPacket { return &StatusRequest{} },
		IDPingRequest:   func() protocol.ServerPacket { return &PingRequest{} },
	},
	protocol.Login: {
		IDLoginStart:          func() protocol.ServerPacket { return &LoginStart{} },
		IDLoginAck:            func() protocol.ServerPacket { return &LoginAck{} },
		IDLoginCookieResponse: func() protocol.ServerPacket { return &LoginCookieResponse{} },
	},
	protocol.Config: {
		IDClientInformation:    func() protocol.ServerPacket { return &ClientInformation{} },
		IDConfigCookieResponse: func() protocol.ServerPacket { return &ConfigCookieResponse{} },
		IDAckFinishConfig:      func() protocol.ServerPacket { return &AckFinishConfig{} },
		IDConfigKeepAliveSB:    func() protocol.ServerPacket { return &ConfigKeepAliveServerbound{} },
		IDKnownPacksSB:         func() protocol.ServerPacket { return &KnownPacksServerbound{} },
	},
	protocol.Play: {
		IDPlayKeepAliveSB: func() protocol.ServerPacket { return &PlayKeepAliveServerbound{} },
		IDPlayerPosition:  func() protocol.ServerPacket { return &PlayerPosition{} },
	},
}

// Lookup resolves a raw serverbound packet to a fresh typed instance for the
// given connection state. The bool is false for IDs that are not legal in
// that state.
func Lookup(state protocol.ConnectionState, id codec.VarInt) (protocol.ServerPacket, bool) {
	table, ok := serverbound[state]
	if !ok {
		return nil, false
	}

	ctor, ok := table[id]
	if !ok {
		return nil, false
	}

	return ctor(), true
}

// Decode resolves and reads a raw packet in one step.
func Decode(state protocol.ConnectionState, raw protocol.RawPacket) (protocol.ServerPacket, error) {
	pk, ok := Lookup(state, raw.ID)
	if !ok {
		return nil, ErrUnknownPacket
	}

	if err := pk.Read(codec.NewReader(raw.Payload)); err != nil {
		return nil, err
	}

	return pk, nil
}
