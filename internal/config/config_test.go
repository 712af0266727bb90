package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
	require.NoError(t, Validate(Default()))
	require.Equal(t, []Zone{
		{Label: "London", Location: "Europe/London"},
		{Label: "USA (New York)", Location: "America/New_York"},
	}, Default().Zones)

	cases := map[string]func(*Config){
		"bad level":       func(c *Config) { c.LogLevel = "loud" },
		"zero interval":   func(c *Config) { c.TickInterval = 0 },
		"no zones":        func(c *Config) { c.Zones = nil },
		"empty location":  func(c *Config) { c.Zones[0].Location = "" },
		"unknown zone":    func(c *Config) { c.Zones[1].Location = "Mars/Olympus_Mons" },
		"negative window": func(c *Config) { c.Window.Width = -1 },
	}

	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		require.Error(t, Validate(cfg), name)
	}
}

// TestLoad_MissingFileYieldsDefault ensures the first run works without a settings file.
func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestLoad_PartialFileKeepsDefaults checks that unspecified keys keep their defaults.
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\ntick_interval: 500ms\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	require.Len(t, cfg.Zones, 2)
}

// TestLoad_InvalidFile covers malformed YAML and failed validation.
func TestLoad_InvalidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("zones: [::"), 0o600))

	_, err := Load(broken)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("zones: []\n"), 0o600))

	_, err = Load(invalid)
	require.ErrorIs(t, err, errNoZones)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := Default()
	cfg.Zones = append(cfg.Zones, Zone{Label: "Tokyo", Location: "Asia/Tokyo"})
	cfg.ExitLogFile = "exit.log"

	require.NoError(t, Save(path, cfg))
	require.Error(t, Save(path, nil))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
