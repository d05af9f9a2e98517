package main

import (
	"log/slog"

	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/packets"
)

// loginHandler resolves the player's identity and negotiates compression.
// Sessions arriving via a transfer must present a valid session cookie before
// login completes.
type loginHandler struct {
	transferred bool

	started     bool
	successSent bool
	pendingName string
}

func (*loginHandler) state() protocol.ConnectionState {
	return protocol.Login
}

func (h *loginHandler) handle(s *session, pk protocol.ServerPacket) error {
	switch pk := pk.(type) {
	case *packets.LoginStart:
		if h.started {
			return s.drop("repeated login start")
		}

		h.started = true

		if !validUsername(pk.Name) {
			s.srv.alerts.violation(s, "invalid username", tracerr.New("username rejected"))
			return s.disconnect("Invalid username", slog.String("username", pk.Name))
		}

		if s.srv.playerCount() >= s.srv.cfg.MaxPlayers {
			return s.disconnect("Server is full")
		}

		if h.transferred && s.srv.cookies.enabled() {
			h.pendingName = pk.Name
			return s.send(&packets.LoginCookieRequest{Key: sessionCookieKey})
		}

		return h.finish(s, pk.Name)

	case *packets.LoginCookieResponse:
		if h.pendingName == "" {
			return s.drop("unsolicited cookie response")
		}

		if pk.Key != sessionCookieKey {
			return s.drop("cookie key mismatch", slog.String("key", pk.Key.String()))
		}

		if pk.Payload == nil {
			s.srv.alerts.violation(s, "transfer without cookie", tracerr.New("cookie absent"))
			return s.disconnect("Transfer session not recognized")
		}

		c, err := s.srv.cookies.Open(*pk.Payload)
		if err != nil {
			s.srv.alerts.violation(s, "bad transfer cookie", err)
			return s.disconnect("Transfer session not recognized")
		}

		if c.Username != h.pendingName {
			s.srv.alerts.violation(s, "cookie identity mismatch", tracerr.New("username mismatch"))
			return s.disconnect("Transfer session not recognized")
		}

		s.logger.Info("transfer cookie accepted", slog.String("player", c.PlayerID.String()))

		name := h.pendingName
		h.pendingName = ""

		return h.finish(s, name)

	case *packets.LoginAck:
		if !h.successSent {
			return s.drop("login ack before success")
		}

		next := &configHandler{}
		s.transition(protocol.Config, next)

		return next.enter(s)
	}

	return s.drop("unexpected packet in login")
}

// finish loads the profile, flips on compression, and sends LoginSuccess.
func (h *loginHandler) finish(s *session, name string) error {
	p, err := s.srv.profiles.ensure(name)
	if err != nil {
		return s.fail("load profile", err)
	}

	if p.banned {
		s.srv.alerts.ban(s, p.banReason)
		return s.disconnect("You are banned: " + p.banReason)
	}

	s.identify(p.playerID, p.username)

	if t := s.srv.cfg.CompressionThreshold; t >= 0 {
		threshold := protocol.CompressionThreshold(t)
		level := protocol.CompressionLevel(s.srv.cfg.CompressionLevel)

		// The threshold announcement itself goes out uncompressed; the
		// connection switches formats right after it is flushed.
		err := s.sendThen(packets.NewSetCompression(threshold), func() {
			s.conn.EnableCompression(threshold, level)
		})
		if err != nil {
			return tracerr.Wrap(err)
		}
	}

	h.successSent = true

	return s.send(&packets.LoginSuccess{
		UUID:       p.playerID,
		Username:   p.username,
		Properties: p.properties,
	})
}

func validUsername(name string) bool {
	if len(name) < 3 || len(name) > 16 {
		return false
	}

	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}

	return true
}
