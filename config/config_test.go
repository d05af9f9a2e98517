package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "configuration.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
motd = "Welcome"
max_players = 100
compression_threshold = -1
website_url = "https://example.net"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "Welcome", cfg.MOTD)
	require.Equal(t, uint32(100), cfg.MaxPlayers)
	require.Equal(t, -1, cfg.CompressionThreshold)
	require.Equal(t, "https://example.net", cfg.WebsiteURL)

	// Untouched keys keep their defaults.
	def := Default()
	require.Equal(t, def.GameAddr, cfg.GameAddr)
	require.Equal(t, def.VersionName, cfg.VersionName)
	require.Equal(t, def.CompressionLevel, cfg.CompressionLevel)
	require.Equal(t, def.SessionLogDir, cfg.SessionLogDir)
}

func TestLoadExplicitZeroOverridesDefault(t *testing.T) {
	path := writeConfig(t, `
compression_threshold = 0
max_players = 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, cfg.CompressionThreshold)
	require.Equal(t, uint32(0), cfg.MaxPlayers)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, `compression_level = 12`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "compression_level")
}

func TestLoadRejectsEmptyAddr(t *testing.T) {
	path := writeConfig(t, `game_addr = "  "`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
