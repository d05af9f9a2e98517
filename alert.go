package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	discordwebhook "github.com/bensch777/discord-webhook-golang"
	"github.com/pocketbase/pocketbase"
	"github.com/ztrue/tracerr"
)

// An alerter pushes noteworthy session events to a Discord webhook. With no
// webhook configured it only logs.
type alerter struct {
	app     *pocketbase.PocketBase
	webhook string
}

func newAlerter(app *pocketbase.PocketBase, webhook string) *alerter {
	return &alerter{app: app, webhook: webhook}
}

// violation reports a client that broke the wire contract.
func (a *alerter) violation(s *session, title string, err error) {
	a.app.Logger().Warn("protocol violation",
		slog.String("session", s.id.String()),
		slog.String("remote", s.remoteAddr),
		slog.String("title", title),
		slog.String("error", err.Error()),
	)

	a.push(s, "Protocol Violation: "+title, err.Error(), 0xFF0000)
}

// ban reports an enforced ban taking effect on a live session.
func (a *alerter) ban(s *session, reason string) {
	a.push(s, "Ban Enforced", reason, 0xFAFF00)
}

func (a *alerter) push(s *session, title, description string, color int) {
	if a.webhook == "" {
		return
	}

	_, username := s.identity()

	embed := discordwebhook.Embed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now(),
		Footer: discordwebhook.Footer{
			Text: fmt.Sprintf("Session ID: '%s'", s.id.String()),
		},
		Author: discordwebhook.Author{
			Name: fmt.Sprintf("%s (%s)", username, s.remoteAddr),
		},
	}

	hook := discordwebhook.Hook{
		Username: "Pumpkin",
		Embeds:   []discordwebhook.Embed{embed},
	}

	payload, err := json.Marshal(hook)
	if err != nil {
		a.app.Logger().Error("marshal alert", slog.Any("traceback", tracerr.StackTrace(tracerr.Wrap(err))))
		return
	}

	// Fire and forget; a down webhook must never stall a session pump.
	go func() {
		if err := discordwebhook.ExecuteWebhook(a.webhook, payload); err != nil {
			a.app.Logger().Error("deliver alert", slog.String("error", err.Error()))
		}
	}()
}
