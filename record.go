package main

import (
	"log/slog"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// registerRecordHooks wires admin edits in the dashboard to live sessions:
// banning a profile kicks its session, and saving a transfer row moves every
// session to the named host.
func registerRecordHooks(app *pocketbase.PocketBase, gs *gameServer) {
	app.OnRecordAfterUpdateRequest("profiles").Add(infailableHandler(func(e *core.RecordUpdateEvent) {
		if !e.Record.GetBool("banned") {
			return
		}

		s := gs.sessionByPlayer(e.Record.GetString("player_id"))
		if s == nil {
			return
		}

		reason := e.Record.GetString("ban_reason")

		gs.alerts.ban(s, reason)
		s.disconnect("You are banned: " + reason)
	}))

	app.OnRecordAfterCreateRequest("transfers").Add(infailableHandler(func(e *core.RecordCreateEvent) {
		host := e.Record.GetString("host")
		port := e.Record.GetInt("port")

		if host == "" || port <= 0 || port > 0xFFFF {
			app.Logger().Warn("ignoring malformed transfer row", slog.String("host", host), slog.Int("port", port))
			return
		}

		app.Logger().Info("transferring all sessions", slog.String("host", host), slog.Int("port", port))
		gs.transferAll(host, uint16(port))
	}))
}
