package main

import (
	"log/slog"
	"math"

	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
	"github.com/l3ony/Pumpkin/protocol/packets"
)

// Spawn point handed to every fresh session.
const (
	spawnX = 8.5
	spawnY = 65.0
	spawnZ = 8.5
)

// Largest coordinate magnitude a client may report.
const worldBound = 3.2e7

// playHandler owns a playing session: it spawns the player and vets the
// movement packets the client streams afterwards.
type playHandler struct {
	teleportID codec.VarInt

	x float64
	y float64
	z float64
}

func (*playHandler) state() protocol.ConnectionState {
	return protocol.Play
}

// enter marks the profile online and sends the initial play packets.
func (h *playHandler) enter(s *session) error {
	if err := s.srv.profiles.markOnline(s); err != nil {
		s.logger.Warn("mark profile online", slog.String("error", err.Error()))
	}

	s.logger.Info("entered play")

	h.teleportID++
	h.x, h.y, h.z = spawnX, spawnY, spawnZ

	err := s.send(&packets.SyncPosition{
		TeleportID: h.teleportID,
		X:          spawnX,
		Y:          spawnY,
		Z:          spawnZ,
	})
	if err != nil {
		return err
	}

	if links := s.srv.serverLinks(); len(links) > 0 {
		if err := s.send(&packets.ServerLinks{Links: links}); err != nil {
			return err
		}
	}

	return s.send(&packets.SoundEffect{
		Sound: protocol.InlineSound(protocol.SoundEvent{
			Name: codec.Vanilla("entity.player.levelup"),
		}),
		X:      spawnX,
		Y:      spawnY,
		Z:      spawnZ,
		Volume: 1,
		Pitch:  1,
	})
}

func (h *playHandler) handle(s *session, pk protocol.ServerPacket) error {
	switch pk := pk.(type) {
	case *packets.PlayerPosition:
		if !validCoord(pk.X) || !validCoord(pk.Y) || !validCoord(pk.Z) {
			s.srv.alerts.violation(s, "invalid position", tracerr.New("position out of bounds"))
			return s.drop("invalid position",
				slog.Float64("x", pk.X),
				slog.Float64("y", pk.Y),
				slog.Float64("z", pk.Z),
			)
		}

		h.x, h.y, h.z = pk.X, pk.Y, pk.Z

		return nil
	}

	return s.drop("unexpected packet in play")
}

func validCoord(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}

	return math.Abs(v) <= worldBound
}

// serverLinks builds the advertised link list from config.
func (gs *gameServer) serverLinks() []protocol.Link {
	links := make([]protocol.Link, 0, 2)

	if gs.cfg.BugReportURL != "" {
		links = append(links, protocol.NewLink(protocol.BuiltInLabel(protocol.LinkBugReport), gs.cfg.BugReportURL))
	}

	if gs.cfg.WebsiteURL != "" {
		links = append(links, protocol.NewLink(protocol.TextLabel(protocol.Text("Website")), gs.cfg.WebsiteURL))
	}

	return links
}
