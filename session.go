package main

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/netcode"
	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/packets"
)

// A handler owns the packets of one connection state.
type handler interface {
	// Handle a decoded packet.
	handle(s *session, pk protocol.ServerPacket) error

	// Which connection state the handler is for.
	state() protocol.ConnectionState
}

// An outbound entry is a queued packet plus an optional action applied after
// the packet has been flushed. The action is how the login flow flips the
// connection to compressed framing between SetCompression and LoginSuccess.
type outbound struct {
	pk   protocol.ClientPacket
	then func()
}

// A session represents one connection to the game server. It is the sole
// owner of the connection's state value; the codec below it never mutates it.
// Outbound packets are queued in a channel; clients too slow to keep up with
// the queue are removed.
type session struct {
	srv *gameServer
	app *pocketbase.PocketBase

	logger *slog.Logger

	id         uuid.UUID
	remoteAddr string
	conn       *netcode.Conn

	state   protocol.ConnectionState
	handler handler

	playerID uuid.UUID
	username string
	locale   string

	outbox       chan outbound
	readerClosed chan struct{}

	keepAliveTicker *time.Ticker
	dropTicker      *time.Ticker

	// Payload of the keep alive still awaiting its echo, zero when none.
	pendingKeepAlive atomic.Int64

	mu     sync.Mutex
	closed bool

	fail func(reason string, err error, args ...any) error
	drop func(reason string, args ...any) error
}

// Queue a packet for the write pump.
func (s *session) send(pk protocol.ClientPacket) error {
	return s.sendThen(pk, nil)
}

// Queue a packet plus an action to run once it has been flushed.
func (s *session) sendThen(pk protocol.ClientPacket, then func()) error {
	select {
	case s.outbox <- outbound{pk: pk, then: then}:
	default:
		return s.drop("session cannot keep up with packets")
	}

	return nil
}

// How long a queued disconnect reason may wait for the write pump before the
// connection is torn down anyway.
const disconnectFlushTimeout = 5 * time.Second

// disconnect tells the peer why before dropping it, using whichever
// disconnect packet the current state allows. The reason rides the outbox so
// the write pump flushes it ahead of the close; a wedged pump still gets the
// connection torn down by the timer.
func (s *session) disconnect(reason string, args ...any) error {
	msg := protocol.Text(reason)

	var pk protocol.ClientPacket

	switch s.currentState() {
	case protocol.Login:
		pk = &packets.LoginDisconnect{Reason: msg}
	case protocol.Config:
		pk = &packets.ConfigDisconnect{Reason: msg}
	case protocol.Play:
		pk = &packets.PlayDisconnect{Reason: msg}
	}

	if pk == nil {
		return s.drop(reason, args...)
	}

	flushed := make(chan struct{})

	err := s.sendThen(pk, func() {
		close(flushed)
		s.drop(reason, args...)
	})
	if err != nil {
		// The outbox was full; sendThen already dropped the session.
		return err
	}

	go func() {
		select {
		case <-flushed:
		case <-time.After(disconnectFlushTimeout):
			s.drop(reason, args...)
		}
	}()

	return nil
}

// Handle one raw packet from the frame layer.
func (s *session) handleRaw(raw protocol.RawPacket) error {
	state, h := s.currentHandler()

	pk, err := packets.Decode(state, raw)
	if err != nil {
		s.srv.alerts.violation(s, "undecodable packet", err)
		return s.drop("undecodable packet", slog.Int("id", int(raw.ID)), slog.String("error", err.Error()))
	}

	// Keep alive echoes are handled out of band, whichever handler is active.
	switch ka := pk.(type) {
	case *packets.ConfigKeepAliveServerbound:
		return s.handleKeepAlive(ka.Payload)
	case *packets.PlayKeepAliveServerbound:
		return s.handleKeepAlive(ka.Payload)
	}

	if h == nil {
		return s.fail("no handler for state", tracerr.New("handler missing"), slog.String("state", state.String()))
	}

	if h.state() != state {
		return s.drop("handler state mismatch", slog.String("state", state.String()))
	}

	return tracerr.Wrap(h.handle(s, pk))
}

func (s *session) handleKeepAlive(payload int64) error {
	if !s.pendingKeepAlive.CompareAndSwap(payload, 0) {
		return s.drop("keep alive mismatch", slog.Int64("payload", payload))
	}

	return nil
}

// sendKeepAlive issues a challenge for the current state. Called by the time
// pump only once the session has reached config.
func (s *session) sendKeepAlive() error {
	if s.pendingKeepAlive.Load() != 0 {
		return s.drop("keep alive unanswered")
	}

	payload := time.Now().UnixMilli()
	s.pendingKeepAlive.Store(payload)

	switch s.currentState() {
	case protocol.Config:
		return s.send(&packets.ConfigKeepAliveClientbound{Payload: payload})
	case protocol.Play:
		return s.send(&packets.PlayKeepAliveClientbound{Payload: payload})
	}

	return nil
}

// The session's mutable identity is written by handlers on the read pump and
// read from the time pump, other sessions' status requests, and the admin
// record hooks, so every access goes through s.mu.

func (s *session) currentState() protocol.ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *session) currentHandler() (protocol.ConnectionState, handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state, s.handler
}

// transition moves the session to a new state and installs its handler as
// one step, so no observer sees a state paired with the old handler.
func (s *session) transition(state protocol.ConnectionState, h handler) {
	s.mu.Lock()
	s.state = state
	s.handler = h
	s.mu.Unlock()
}

// identify binds the resolved profile to the session and tags its logger.
func (s *session) identify(playerID uuid.UUID, username string) {
	s.mu.Lock()
	s.playerID = playerID
	s.username = username
	s.logger = s.logger.With(
		slog.String("username", username),
		slog.String("player", playerID.String()),
	)
	s.mu.Unlock()
}

func (s *session) identity() (uuid.UUID, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playerID, s.username
}

func (s *session) setLocale(locale string) {
	s.mu.Lock()
	s.locale = locale
	s.mu.Unlock()
}

func (s *session) clientLocale() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locale
}
