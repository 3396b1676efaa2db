package constants

import "os"

func GetConfigPath() string {
	path := os.Getenv("CHORDSHEET_CONFIG")
	if path != "" {
		return path
	}
	return "chordsheet.yaml"
}

const DefaultAddr = ":8080"

const DefaultLogLevel = "info"

// polling interval and quiet period for `watch`, in milliseconds
const DefaultWatchIntervalMs = 500
const DefaultWatchDebounceMs = 200

const DefaultTempo = 120

// TODO: derive chord length from the lyric syllables once we count them
const DefaultBeatsPerChord = 4

const DefaultVelocity = 90

// 960 ticks per quarter note, same as most DAWs
const TicksPerQuarter = 960

// max request body size accepted by `serve`, 1 MiB
const MaxSongSize = 1 << 20
