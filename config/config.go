// Package config loads the server's TOML configuration file and overlays it
// on top of the built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Server is the runtime configuration of the game server.
type Server struct {
	// GameAddr is the TCP address the game listener binds.
	GameAddr string

	// VersionName is the human-readable version advertised in status bodies.
	VersionName string

	// MOTD is the status description line.
	MOTD string

	// MaxPlayers caps concurrent logged-in players.
	MaxPlayers uint32

	// EnforceSecureChat is advertised in the status body.
	EnforceSecureChat bool

	// Favicon is an optional base64 data URL shown in the server list.
	Favicon string

	// CompressionThreshold is the minimum frame size that gets compressed.
	// Negative disables compression entirely.
	CompressionThreshold int

	// CompressionLevel is the zlib level used above the threshold.
	CompressionLevel uint32

	// CookieSecret seeds the HMAC key for session cookies. Must be set for
	// transfers to carry sessions across hosts.
	CookieSecret string

	// AlertWebhook, when set, receives protocol-violation alerts.
	AlertWebhook string

	// SessionLogDir is where per-session JSON logs rotate.
	SessionLogDir string

	// WebsiteURL and BugReportURL populate the advertised server links.
	WebsiteURL   string
	BugReportURL string
}

type fileConfig struct {
	GameAddr             string `toml:"game_addr"`
	VersionName          string `toml:"version_name"`
	MOTD                 string `toml:"motd"`
	MaxPlayers           uint32 `toml:"max_players"`
	EnforceSecureChat    bool   `toml:"enforce_secure_chat"`
	Favicon              string `toml:"favicon"`
	CompressionThreshold int    `toml:"compression_threshold"`
	CompressionLevel     uint32 `toml:"compression_level"`
	CookieSecret         string `toml:"cookie_secret"`
	AlertWebhook         string `toml:"alert_webhook"`
	SessionLogDir        string `toml:"session_log_dir"`
	WebsiteURL           string `toml:"website_url"`
	BugReportURL         string `toml:"bug_report_url"`
}

// Default returns the configuration used when a key is absent from the file.
func Default() Server {
	return Server{
		GameAddr:             ":25565",
		VersionName:          "1.21.4",
		MOTD:                 "A Pumpkin Server",
		MaxPlayers:           20,
		CompressionThreshold: 256,
		CompressionLevel:     6,
		SessionLogDir:        "pb_data/sessions",
	}
}

// Load reads path and overlays every defined key over the defaults.
func Load(path string) (Server, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Server{}, fmt.Errorf("load server config: %w", err)
	}

	if meta.IsDefined("game_addr") {
		cfg.GameAddr = strings.TrimSpace(raw.GameAddr)
	}
	if meta.IsDefined("version_name") {
		cfg.VersionName = strings.TrimSpace(raw.VersionName)
	}
	if meta.IsDefined("motd") {
		cfg.MOTD = raw.MOTD
	}
	if meta.IsDefined("max_players") {
		cfg.MaxPlayers = raw.MaxPlayers
	}
	if meta.IsDefined("enforce_secure_chat") {
		cfg.EnforceSecureChat = raw.EnforceSecureChat
	}
	if meta.IsDefined("favicon") {
		cfg.Favicon = strings.TrimSpace(raw.Favicon)
	}
	if meta.IsDefined("compression_threshold") {
		cfg.CompressionThreshold = raw.CompressionThreshold
	}
	if meta.IsDefined("compression_level") {
		cfg.CompressionLevel = raw.CompressionLevel
	}
	if meta.IsDefined("cookie_secret") {
		cfg.CookieSecret = raw.CookieSecret
	}
	if meta.IsDefined("alert_webhook") {
		cfg.AlertWebhook = strings.TrimSpace(raw.AlertWebhook)
	}
	if meta.IsDefined("session_log_dir") {
		cfg.SessionLogDir = strings.TrimSpace(raw.SessionLogDir)
	}
	if meta.IsDefined("website_url") {
		cfg.WebsiteURL = strings.TrimSpace(raw.WebsiteURL)
	}
	if meta.IsDefined("bug_report_url") {
		cfg.BugReportURL = strings.TrimSpace(raw.BugReportURL)
	}

	if cfg.CompressionLevel > 9 {
		return Server{}, fmt.Errorf(
			"load server config: compression_level %d out of range (0-9)",
			cfg.CompressionLevel,
		)
	}

	if cfg.GameAddr == "" {
		return Server{}, fmt.Errorf("load server config: game_addr must not be empty")
	}

	return cfg, nil
}
