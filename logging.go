package main

import (
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newSessionLogger builds the per-session logger. Session events go to a
// rotating JSON file so a single connection's history can be pulled without
// grepping the app log; the session id tags every line.
func newSessionLogger(app *pocketbase.PocketBase, dir string, id uuid.UUID) *slog.Logger {
	if dir == "" {
		return app.Logger().With(slog.String("session", id.String()))
	}

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "sessions.log"),
		MaxSize:    32,
		MaxBackups: 8,
	}

	slogger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{}))

	return slogger.With(slog.String("session", id.String()))
}
