package main

import (
	"log/slog"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
	"github.com/l3ony/Pumpkin/protocol/packets"
)

// handshakeHandler handles the single packet of the handshake state and moves
// the session to whichever state the client's intent names.
type handshakeHandler struct{}

func (*handshakeHandler) state() protocol.ConnectionState {
	return protocol.HandShake
}

func (*handshakeHandler) handle(s *session, pk protocol.ServerPacket) error {
	hs, ok := pk.(*packets.Handshake)
	if !ok {
		return s.drop("unexpected packet in handshake")
	}

	next, err := hs.NextState()
	if err != nil {
		s.srv.alerts.violation(s, "invalid handshake intent", err)
		return s.drop("invalid handshake intent", slog.Int("intent", int(hs.Intent)))
	}

	s.logger.Info("handshake",
		slog.Int("protocol", int(hs.ProtocolVersion)),
		slog.String("address", hs.ServerAddress),
		slog.Int("port", int(hs.ServerPort)),
		slog.String("next", next.String()),
	)

	switch next {
	case protocol.Status:
		s.transition(protocol.Status, &statusHandler{})

	case protocol.Login, protocol.Transfer:
		s.transition(protocol.Login, &loginHandler{transferred: next == protocol.Transfer})

		if hs.ProtocolVersion != codec.VarInt(protocol.CurrentProtocol) {
			return s.disconnect("Outdated client", slog.Int("protocol", int(hs.ProtocolVersion)))
		}
	}

	return nil
}
