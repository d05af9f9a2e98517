package main

import (
	"encoding/json"

	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/packets"
)

// statusHandler answers the server-list status exchange. One status body per
// connection; pings may follow.
type statusHandler struct {
	answered bool
}

func (*statusHandler) state() protocol.ConnectionState {
	return protocol.Status
}

func (h *statusHandler) handle(s *session, pk protocol.ServerPacket) error {
	switch pk := pk.(type) {
	case *packets.StatusRequest:
		if h.answered {
			return s.drop("repeated status request")
		}

		if !s.srv.statusLimiter.Allow() {
			return s.drop("status rate limited")
		}

		h.answered = true

		body, err := s.srv.statusBody()
		if err != nil {
			return s.fail("build status body", err)
		}

		return s.send(&packets.StatusResponse{Body: body})

	case *packets.PingRequest:
		return s.send(&packets.PongResponse{Payload: pk.Payload})
	}

	return s.drop("unexpected packet in status")
}

// statusBody renders the server-list JSON from live config and session data.
func (gs *gameServer) statusBody() (string, error) {
	resp := protocol.StatusResponse{
		Version: &protocol.Version{
			Name:     gs.cfg.VersionName,
			Protocol: uint32(protocol.CurrentProtocol),
		},
		Players: &protocol.Players{
			Max:    gs.cfg.MaxPlayers,
			Online: gs.playerCount(),
			Sample: gs.samplePlayers(),
		},
		Description:        gs.cfg.MOTD,
		EnforcesSecureChat: gs.cfg.EnforceSecureChat,
	}

	if gs.cfg.Favicon != "" {
		resp.Favicon = &gs.cfg.Favicon
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return "", tracerr.Wrap(err)
	}

	return string(body), nil
}
