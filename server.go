package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/pocketbase/pocketbase"
	"github.com/realclientip/realclientip-go"
	"github.com/ztrue/tracerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"nhooyr.io/websocket"

	"github.com/l3ony/Pumpkin/config"
	"github.com/l3ony/Pumpkin/netcode"
	"github.com/l3ony/Pumpkin/protocol"
	"github.com/l3ony/Pumpkin/protocol/codec"
	"github.com/l3ony/Pumpkin/protocol/packets"
)

const (
	// Max packets queued per session before it is considered too slow.
	outboxLimit = 64

	// How long a session may stay outside the play state before it is
	// dropped as idle.
	preloadDeadline = time.Minute

	keepAliveInterval = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
)

// The game server owns the TCP listener and the set of live sessions.
type gameServer struct {
	cfg config.Server

	// statusLimiter caps how often anonymous status pings are answered.
	// Defaults to one every 100ms with a burst of 8.
	statusLimiter *rate.Limiter

	logger *slog.Logger

	sessionMutex sync.Mutex
	sessions     map[*session]struct{}

	app      *pocketbase.PocketBase
	cookies  *cookieJar
	alerts   *alerter
	profiles *profileStore
}

func newGameServer(app *pocketbase.PocketBase, cfg config.Server) (*gameServer, error) {
	cookies, err := newCookieJar(cfg.CookieSecret)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	return &gameServer{
		cfg:           cfg,
		statusLimiter: rate.NewLimiter(rate.Every(time.Millisecond*100), 8),
		logger:        app.Logger().WithGroup("game"),
		sessions:      make(map[*session]struct{}),
		app:           app,
		cookies:       cookies,
		alerts:        newAlerter(app, cfg.AlertWebhook),
		profiles:      &profileStore{app: app},
	}, nil
}

// listen binds the game port and accepts connections until ctx is done.
func (gs *gameServer) listen(ctx context.Context) error {
	ln, err := net.Listen("tcp", gs.cfg.GameAddr)
	if err != nil {
		return tracerr.Wrap(err)
	}

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	gs.logger.Info("game listener up", slog.String("addr", gs.cfg.GameAddr))

	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			return tracerr.Wrap(err)
		}

		go gs.serveConn(ctx, c, c.RemoteAddr().String())
	}
}

// bridgeHandler serves the game protocol over a WebSocket, for clients that
// can only speak HTTP outbound. The binary message stream is adapted into a
// net.Conn and handed to the same session pipeline as the TCP listener.
func (gs *gameServer) bridgeHandler(ctx echo.Context) error {
	req := ctx.Request()

	c, err := websocket.Accept(ctx.Response().Writer, req, nil)
	if err != nil {
		return tracerr.Wrap(err)
	}

	strat, _ := realclientip.NewRightmostNonPrivateStrategy("X-Forwarded-For")
	remoteAddr := strat.ClientIP(req.Header, req.RemoteAddr)

	nc := websocket.NetConn(req.Context(), c, websocket.MessageBinary)
	gs.serveConn(req.Context(), nc, remoteAddr)

	return nil
}

// serveConn runs one session over any stream transport until it ends.
// Instead of returning an error, it redirects errors to the session logger.
func (gs *gameServer) serveConn(ctx context.Context, c net.Conn, remoteAddr string) {
	s, err := gs.serve(ctx, c, remoteAddr)

	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.EOF) {
		return
	}

	s.logger.Error(err.Error(), slog.Any("stacktrace", tracerr.StackTrace(err)))
}

// This listens for new frames sent by the client and handles them.
// If we don't receive a new frame within the read timeout, we drop the client.
func (gs *gameServer) readPump(ctx context.Context, s *session) error {
	defer close(s.readerClosed)

	for {
		if err := s.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			return tracerr.Wrap(err)
		}

		raw, err := s.conn.ReadPacket()

		if errors.Is(err, net.ErrClosed) || errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return tracerr.Wrap(err)
		}

		if err := s.handleRaw(raw); err != nil {
			return tracerr.Wrap(err)
		}

		if ctx.Err() != nil {
			return tracerr.Wrap(ctx.Err())
		}
	}
}

// This listens for new packets queued on the outbox and writes them to the
// connection. If a write doesn't finish within the write timeout, we drop the
// client.
func (gs *gameServer) writePump(ctx context.Context, s *session) error {
	for {
		select {
		case item := <-s.outbox:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return tracerr.Wrap(err)
			}

			if err := s.conn.WritePacket(item.pk); err != nil {
				return tracerr.Wrap(err)
			}

			if item.then != nil {
				item.then()
			}

		case <-ctx.Done():
			return tracerr.Wrap(ctx.Err())

		case <-s.readerClosed:
			return nil
		}
	}
}

// This continuously performs actions based on tickers. Keep alives start once
// the session reaches the config state; sessions that linger before play for
// too long are dropped.
func (gs *gameServer) timePump(ctx context.Context, s *session) error {
	for {
		select {
		case <-s.keepAliveTicker.C:
			if state := s.currentState(); state != protocol.Config && state != protocol.Play {
				continue
			}

			if err := s.sendKeepAlive(); err != nil {
				return tracerr.Wrap(err)
			}

		case <-s.dropTicker.C:
			if s.currentState() != protocol.Play {
				return s.drop("dropped due to inactivity before play")
			}

		case <-ctx.Done():
			return tracerr.Wrap(ctx.Err())

		case <-s.readerClosed:
			return nil
		}
	}
}

// serve creates a session around the connection, registers it, and runs the
// reader, writer and time pumps until one of them errors or ends.
func (gs *gameServer) serve(ctx context.Context, c net.Conn, remoteAddr string) (*session, error) {
	var s *session

	id := uuid.New()
	conn := netcode.NewConn(c)

	s = &session{
		srv:    gs,
		app:    gs.app,
		logger: newSessionLogger(gs.app, gs.cfg.SessionLogDir, id),

		id:         id,
		remoteAddr: remoteAddr,
		conn:       conn,

		state:   protocol.HandShake,
		handler: &handshakeHandler{},

		outbox:       make(chan outbound, outboxLimit),
		readerClosed: make(chan struct{}),

		keepAliveTicker: time.NewTicker(keepAliveInterval),
		dropTicker:      time.NewTicker(preloadDeadline),

		fail: func(reason string, err error, args ...any) error {
			s.mu.Lock()
			defer s.mu.Unlock()

			attrs := append([]any{slog.Any("reason", reason), slog.Any("traceback", tracerr.StackTrace(err))}, args...)
			s.logger.Error("failed connection", attrs...)

			if s.closed {
				return nil
			}

			s.closed = true

			return tracerr.Wrap(conn.Close())
		},

		drop: func(reason string, args ...any) error {
			s.mu.Lock()
			defer s.mu.Unlock()

			attrs := append([]any{slog.Any("reason", reason)}, args...)
			s.logger.Warn("dropped connection", attrs...)

			if s.closed {
				return nil
			}

			s.closed = true

			return tracerr.Wrap(conn.Close())
		},
	}

	gs.addSession(s)
	defer gs.deleteSession(s)
	defer func() {
		if _, username := s.identity(); username == "" {
			return
		}

		if err := gs.profiles.markOffline(s); err != nil {
			s.logger.Warn("mark profile offline", slog.String("error", err.Error()))
		}
	}()
	defer s.keepAliveTicker.Stop()
	defer s.dropTicker.Stop()
	defer conn.Close()

	errs, ctx := errgroup.WithContext(ctx)
	errs.Go(func() error { return tracerr.Wrap(gs.timePump(ctx, s)) })
	errs.Go(func() error { return tracerr.Wrap(gs.readPump(ctx, s)) })
	errs.Go(func() error { return tracerr.Wrap(gs.writePump(ctx, s)) })

	s.logger.Info("session opened", slog.String("remote", remoteAddr))

	return s, errs.Wait()
}

// This function adds a new session to the map.
func (gs *gameServer) addSession(s *session) {
	gs.sessionMutex.Lock()
	gs.sessions[s] = struct{}{}
	gs.sessionMutex.Unlock()
}

// This function removes a session from the map.
func (gs *gameServer) deleteSession(s *session) {
	gs.sessionMutex.Lock()
	delete(gs.sessions, s)
	gs.sessionMutex.Unlock()
}

// playerCount counts sessions that have made it into the play state.
func (gs *gameServer) playerCount() uint32 {
	gs.sessionMutex.Lock()
	defer gs.sessionMutex.Unlock()

	n := uint32(0)

	for s := range gs.sessions {
		if s.currentState() == protocol.Play {
			n++
		}
	}

	return n
}

// samplePlayers lists up to twelve playing sessions for the status body.
func (gs *gameServer) samplePlayers() []protocol.Sample {
	gs.sessionMutex.Lock()
	defer gs.sessionMutex.Unlock()

	sample := make([]protocol.Sample, 0, 12)

	for s := range gs.sessions {
		if s.currentState() != protocol.Play {
			continue
		}

		playerID, username := s.identity()

		sample = append(sample, protocol.Sample{
			Name: username,
			ID:   playerID.String(),
		})

		if len(sample) == cap(sample) {
			break
		}
	}

	return sample
}

// sessionByPlayer finds the live session of a player record, if any.
func (gs *gameServer) sessionByPlayer(playerID string) *session {
	gs.sessionMutex.Lock()
	defer gs.sessionMutex.Unlock()

	for s := range gs.sessions {
		if id, _ := s.identity(); id.String() == playerID {
			return s
		}
	}

	return nil
}

// transferAll moves every playing session to another host. Used by the admin
// record hook when a transfer row is saved.
func (gs *gameServer) transferAll(host string, port uint16) {
	gs.sessionMutex.Lock()
	defer gs.sessionMutex.Unlock()

	for s := range gs.sessions {
		switch s.currentState() {
		case protocol.Config:
			s.send(&packets.Transfer{Host: host, Port: codec.VarInt(port)})
		case protocol.Play:
			s.send(&packets.PlayTransfer{Host: host, Port: codec.VarInt(port)})
		}
	}
}
