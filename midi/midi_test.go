package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

const rickroll = "Never gonna [Ebm9]give you [Ab]up\nNever gonna [Fm7]let you [Bbm]down"

func exportAndReadBack(t *testing.T, song string, opts Options) *smf.SMF {
	t.Helper()
	lines, err := parser.Parse(song)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lines, opts))

	s, err := ReadMidi(buf.Bytes())
	require.NoError(t, err)
	return s
}

func TestExportRoundTrip(t *testing.T) {
	s := exportAndReadBack(t, rickroll, DefaultOptions())

	held := Chords(s)
	require.Len(t, held, 4)

	assert := assert.New(t)
	assert.Equal([]uint8{63, 66, 70, 73, 77}, held[0].Keys)
	assert.Equal([]uint8{68, 72, 75}, held[1].Keys)
	assert.Equal([]uint8{65, 68, 72, 75}, held[2].Keys)
	assert.Equal([]uint8{70, 73, 77}, held[3].Keys)

	bar := int64(960 * 4)
	for i, h := range held {
		assert.Equal(int64(i)*bar, h.Tick)
	}
}

func TestExportMatchesChordVoicing(t *testing.T) {
	s := exportAndReadBack(t, "[C/G]la [Dsus2]la", DefaultOptions())
	held := Chords(s)
	require.Len(t, held, 2)

	for i, symbol := range []string{"C/G", "Dsus2"} {
		sym, err := chord.ParseSymbol(symbol)
		require.NoError(t, err)
		assert.Equal(t, chord.CreateChordKey(sym.MidiKeys()), chord.CreateChordKey(held[i].Keys))
	}
}

func TestExportBeatsPerChord(t *testing.T) {
	opts := DefaultOptions()
	opts.BeatsPerChord = 2
	s := exportAndReadBack(t, "[C][G]", opts)

	held := Chords(s)
	require.Len(t, held, 2)
	assert.Equal(t, int64(960*2), held[1].Tick)
}

func TestExportWithoutChords(t *testing.T) {
	s := exportAndReadBack(t, "just words", DefaultOptions())
	assert.Empty(t, Chords(s))
}

func TestExportRejectsUnknownChord(t *testing.T) {
	lines := model.NewLines()
	lines.AddPhrase(0, model.NewPhrase("la", 0, 2, model.NewChord("H7"), 0))

	_, err := Export(lines, DefaultOptions())
	assert.ErrorIs(t, err, chord.ErrInvalidSymbol)

	opts := DefaultOptions()
	opts.BeatsPerChord = 0
	_, err = Export(model.NewLines(), opts)
	assert.Error(t, err)
}

func TestReadMidiFile(t *testing.T) {
	lines, err := parser.Parse(rickroll)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rickroll.mid")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Write(f, lines, DefaultOptions()))
	require.NoError(t, f.Close())

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, Chords(s), 4)

	_, err = ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

func TestReadMidiRejectsCorruptFiles(t *testing.T) {
	lines, err := parser.Parse(rickroll)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lines, DefaultOptions()))

	// zero out the low byte of the track count in the header
	corrupt := buf.Bytes()
	corrupt[11] = 0
	path := filepath.Join(t.TempDir(), "corrupt.mid")
	require.NoError(t, os.WriteFile(path, corrupt, 0644))

	s, err := ReadMidiFile(path)
	assert.Error(t, err)
	assert.Nil(t, s)

	s, err = ReadMidi([]byte("not a midi file"))
	assert.Error(t, err)
	assert.Nil(t, s)
}
