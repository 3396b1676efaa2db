package config

import (
	"os"
	"time"

	"github.com/jsphweid/chordsheet/constants"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type WatchConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	DebounceMs int `yaml:"debounce_ms"`
}

func (w WatchConfig) Interval() time.Duration {
	return time.Duration(w.IntervalMs) * time.Millisecond
}

func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

type MidiConfig struct {
	Tempo         float64 `yaml:"tempo"`
	BeatsPerChord int     `yaml:"beats_per_chord"`
	Velocity      uint8   `yaml:"velocity"`
	Channel       uint8   `yaml:"channel"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Watch  WatchConfig  `yaml:"watch"`
	Midi   MidiConfig   `yaml:"midi"`
	Log    LogConfig    `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           constants.DefaultAddr,
			AllowedOrigins: []string{"*"},
		},
		Watch: WatchConfig{
			IntervalMs: constants.DefaultWatchIntervalMs,
			DebounceMs: constants.DefaultWatchDebounceMs,
		},
		Midi: MidiConfig{
			Tempo:         constants.DefaultTempo,
			BeatsPerChord: constants.DefaultBeatsPerChord,
			Velocity:      constants.DefaultVelocity,
		},
		Log: LogConfig{
			Level: constants.DefaultLogLevel,
		},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing file
// is not an error. CHORDSHEET_ADDR and CHORDSHEET_LOG_LEVEL override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrapf(err, "could not read config %s", path)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "could not parse config %s", path)
		}
	}

	if addr := os.Getenv("CHORDSHEET_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if level := os.Getenv("CHORDSHEET_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Watch.IntervalMs <= 0 {
		return errors.Errorf("watch.interval_ms must be positive, got %d", c.Watch.IntervalMs)
	}
	if c.Watch.DebounceMs < 0 {
		return errors.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMs)
	}
	if c.Midi.Tempo <= 0 {
		return errors.Errorf("midi.tempo must be positive, got %v", c.Midi.Tempo)
	}
	if c.Midi.BeatsPerChord <= 0 {
		return errors.Errorf("midi.beats_per_chord must be positive, got %d", c.Midi.BeatsPerChord)
	}
	// a note on with velocity 0 is a note off
	if c.Midi.Velocity < 1 || c.Midi.Velocity > 127 {
		return errors.Errorf("midi.velocity must be 1..127, got %d", c.Midi.Velocity)
	}
	if c.Midi.Channel > 15 {
		return errors.Errorf("midi.channel must be 0..15, got %d", c.Midi.Channel)
	}
	return nil
}
