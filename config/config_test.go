package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/chordsheet/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chordsheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
  allowed_origins: ["http://localhost:3000"]
watch:
  interval_ms: 100
midi:
  tempo: 90
  channel: 2
log:
  level: debug
  development: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(":9000", cfg.Server.Addr)
	assert.Equal([]string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(100*time.Millisecond, cfg.Watch.Interval())
	assert.Equal(time.Duration(constants.DefaultWatchDebounceMs)*time.Millisecond, cfg.Watch.Debounce())
	assert.Equal(90.0, cfg.Midi.Tempo)
	assert.Equal(constants.DefaultBeatsPerChord, cfg.Midi.BeatsPerChord)
	assert.Equal(uint8(2), cfg.Midi.Channel)
	assert.Equal("debug", cfg.Log.Level)
	assert.True(cfg.Log.Development)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9000\"\n")
	t.Setenv("CHORDSHEET_ADDR", ":7000")
	t.Setenv("CHORDSHEET_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad yaml": "server: [",
		"tempo":    "midi:\n  tempo: -1\n",
		"channel":  "midi:\n  channel: 16\n",
		"interval": "watch:\n  interval_ms: 0\n",
		"beats":    "midi:\n  beats_per_chord: -2\n",
		"debounce": "watch:\n  debounce_ms: -5\n",
		"velocity": "midi:\n  velocity: 200\n",
		"silent":   "midi:\n  velocity: 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
