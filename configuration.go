package main

import (
	"log/slog"
	"time"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/packets"
)

// configHandler runs the configuration exchange: known packs, client
// information, and the session cookie handoff. Once both sides of the
// exchange are in, it finishes config and moves the session to play.
type configHandler struct {
	infoDone   bool
	packsDone  bool
	finishSent bool
}

func (*configHandler) state() protocol.ConnectionState {
	return protocol.Config
}

// enter sends the clientbound half of the exchange.
func (h *configHandler) enter(s *session) error {
	err := s.send(&packets.KnownPacksClientbound{
		Packs: []protocol.KnownPack{
			{Namespace: "minecraft", ID: "core", Version: s.srv.cfg.VersionName},
		},
	})
	if err != nil {
		return err
	}

	if s.srv.cookies.enabled() {
		playerID, username := s.identity()

		sealed, err := s.srv.cookies.Seal(sessionCookie{
			PlayerID: playerID,
			Username: username,
			IssuedAt: time.Now().Unix(),
		})
		if err != nil {
			return s.fail("seal session cookie", err)
		}

		if err := s.send(&packets.StoreCookie{Key: sessionCookieKey, Payload: sealed}); err != nil {
			return err
		}
	}

	return nil
}

func (h *configHandler) handle(s *session, pk protocol.ServerPacket) error {
	switch pk := pk.(type) {
	case *packets.ClientInformation:
		s.setLocale(pk.Locale)
		s.logger.Info("client information",
			slog.String("locale", pk.Locale),
			slog.Int("view_distance", int(pk.ViewDistance)),
		)

		h.infoDone = true

		return h.maybeFinish(s)

	case *packets.KnownPacksServerbound:
		s.logger.Info("known packs", slog.Int("count", len(pk.Packs)))

		h.packsDone = true

		return h.maybeFinish(s)

	case *packets.ConfigCookieResponse:
		return s.drop("unsolicited cookie response")

	case *packets.AckFinishConfig:
		if !h.finishSent {
			return s.drop("config ack before finish")
		}

		next := &playHandler{}
		s.transition(protocol.Play, next)

		return next.enter(s)
	}

	return s.drop("unexpected packet in config")
}

func (h *configHandler) maybeFinish(s *session) error {
	if !h.infoDone || !h.packsDone || h.finishSent {
		return nil
	}

	h.finishSent = true

	return s.send(&packets.FinishConfig{})
}
