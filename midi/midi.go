package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Options struct {
	Name          string
	Tempo         float64
	BeatsPerChord int
	Velocity      uint8
	Channel       uint8
}

func DefaultOptions() Options {
	return Options{
		Tempo:         constants.DefaultTempo,
		BeatsPerChord: constants.DefaultBeatsPerChord,
		Velocity:      constants.DefaultVelocity,
	}
}

// Export turns the chords of a song into a single track MIDI file. Each chord
// is held for BeatsPerChord beats, in line order, with the phrase's lyrics as
// a lyric meta event. Phrases without a chord are skipped.
func Export(lines *model.Lines, opts Options) (*smf.SMF, error) {
	if opts.BeatsPerChord <= 0 {
		return nil, fmt.Errorf("beats per chord must be positive, got %d", opts.BeatsPerChord)
	}

	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = ticks

	var track smf.Track
	if opts.Name != "" {
		track.Add(0, smf.MetaTrackSequenceName(opts.Name))
	}
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(opts.Tempo))

	length := ticks.Ticks4th() * uint32(opts.BeatsPerChord)
	for _, p := range lines.All() {
		if p.Chord == nil {
			continue
		}
		sym, err := chord.ParseSymbol(p.Chord.Chord)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", p.Line, err)
		}
		keys := sym.MidiKeys()

		if p.Lyrics != "" {
			track.Add(0, smf.MetaLyric(p.Lyrics))
		}
		for _, key := range keys {
			track.Add(0, gomidi.NoteOn(opts.Channel, key, opts.Velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = length
			}
			track.Add(delta, gomidi.NoteOff(opts.Channel, key))
		}
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, err
	}
	return s, nil
}

func Write(w io.Writer, lines *model.Lines, opts Options) error {
	s, err := Export(lines, opts)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	return ReadMidi(dat)
}

func ReadMidi(dat []byte) (s *smf.SMF, e error) {
	// smf can panic on corrupt input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("Error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("Error parsing midi file... %w", err)
	}
	return res, nil
}

// Held is the set of keys sounding from one point in time.
type Held struct {
	Tick int64
	Keys []uint8
}

// Chords returns every distinct set of keys that sounds after a note on, in
// time order.
func Chords(s *smf.SMF) []Held {
	type event struct {
		tick  int64
		off   bool
		key   uint8
		order int
	}

	var events []event
	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, event{tick: absTicks, off: velocity == 0, key: key, order: len(events)})
			case ev.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, event{tick: absTicks, off: true, key: key, order: len(events)})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		if events[i].off != events[j].off {
			return events[i].off
		}
		return events[i].order < events[j].order
	})

	var res []Held
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.off {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}
		lastAtTick := i == len(events)-1 || events[i+1].tick != evt.tick
		if !evt.off && lastAtTick && len(pressed) > 0 {
			res = append(res, Held{Tick: evt.tick, Keys: sortedKeys(pressed)})
		}
	}
	return res
}

func sortedKeys(pressed map[uint8]bool) []uint8 {
	keys := make([]uint8, 0, len(pressed))
	for k := range pressed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
