package pitch

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitchClass(t *testing.T) {
	assert := assert.New(t)

	pc, err := ParsePitchClass("C")
	assert.NoError(err)
	assert.Equal(C, pc)

	_, err = ParsePitchClass("@")
	assert.ErrorIs(err, ErrUnknownPitch)
	assert.Contains(err.Error(), "unknown pitch")

	_, err = ParsePitchClass("c")
	assert.ErrorIs(err, ErrUnknownPitch)
}

func TestPitchClassOrderIsFifths(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]PitchClass{F, C, G, D, A, E, B}, []PitchClass{0, 1, 2, 3, 4, 5, 6})

	for i := 0; i < 7; i++ {
		pc, err := PitchClassFromInt(i)
		assert.NoError(err)
		assert.Equal(PitchClass(i), pc)
	}
	_, err := PitchClassFromInt(7)
	assert.Error(err)
}

func TestParseAccidental(t *testing.T) {
	cases := map[string]Accidental{
		"##": DoubleSharp,
		"#":  Sharp,
		"♮":  Natural,
		"b":  Flat,
		"bb": DoubleFlat,
	}
	for s, want := range cases {
		t.Run(s, func(t *testing.T) {
			got, err := ParseAccidental(s)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, s, got.String())
		})
	}

	_, err := ParseAccidental("&")
	assert.ErrorIs(t, err, ErrUnknownAccidental)
	_, err = ParseAccidental("###")
	assert.ErrorIs(t, err, ErrUnknownAccidental)
}

func TestParseNote(t *testing.T) {
	assert := assert.New(t)

	n, err := ParseNote("C#")
	assert.NoError(err)
	assert.Equal(Note{Pitch: C, Accidental: Sharp, HasAccidental: true}, n)

	n, err = ParseNote("G")
	assert.NoError(err)
	assert.Equal(Note{Pitch: G}, n)

	_, err = ParseNote("$")
	assert.ErrorIs(err, ErrUnknownPitch)

	_, err = ParseNote("E%")
	assert.ErrorIs(err, ErrUnknownAccidental)

	_, err = ParseNote("")
	assert.ErrorIs(err, ErrUnknownPitch)
}

func TestNoteString(t *testing.T) {
	for _, s := range []string{"C", "F#", "Bb", "Gbb", "A##", "D♮"} {
		assert.Equal(t, s, MustParseNote(s).String())
	}
}

func TestNotePosition(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-12, MustParseNote("Gbb").Position())
	assert.Equal(11, MustParseNote("A#").Position())
	assert.Equal(1, MustParseNote("C").Position())
	assert.Equal(0, MustParseNote("F").Position())
	assert.Equal(MinPosition, MustParseNote("Fbb").Position())
	assert.Equal(MaxPosition, MustParseNote("B##").Position())
}

func TestPositionIsInjective(t *testing.T) {
	seen := make(map[int]string)
	for _, letter := range []string{"F", "C", "G", "D", "A", "E", "B"} {
		for _, acc := range []string{"", "##", "#", "b", "bb"} {
			s := letter + acc
			p := MustParseNote(s).Position()
			other, dup := seen[p]
			require.False(t, dup, "%s and %s share position %d", s, other, p)
			seen[p] = s
		}
	}
	assert.Len(t, seen, 35)
}

func TestFromPositionRoundTrip(t *testing.T) {
	for p := MinPosition; p <= MaxPosition; p++ {
		t.Run(fmt.Sprint(p), func(t *testing.T) {
			n, err := FromPosition(p)
			require.NoError(t, err)
			assert.Equal(t, p, n.Position())
		})
	}

	_, err := FromPosition(MaxPosition + 1)
	assert.Error(t, err)
	_, err = FromPosition(MinPosition - 1)
	assert.Error(t, err)
}

func TestSemitone(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, MustParseNote("C").Semitone())
	assert.Equal(6, MustParseNote("F#").Semitone())
	assert.Equal(6, MustParseNote("Gb").Semitone())
	assert.Equal(11, MustParseNote("Cb").Semitone())
	assert.Equal(0, MustParseNote("B#").Semitone())
	assert.Equal(5, MustParseNote("Gbb").Semitone())
	assert.True(MustParseNote("F#").Enharmonic(MustParseNote("Gb")))
	assert.NotEqual(MustParseNote("F#").Position(), MustParseNote("Gb").Position())
}

func TestTranspose(t *testing.T) {
	cases := []struct {
		note      string
		halfSteps int
		want      string
	}{
		{"C", 0, "C"},
		{"C", 2, "D"},
		{"C", 7, "G"},
		{"C", 1, "Db"},
		{"C", 6, "F#"},
		{"C", -6, "Gb"},
		{"C", 12, "C"},
		{"Bb", 2, "C"},
		{"Eb", 5, "Ab"},
		{"E", 1, "F"},
		{"F#", 2, "G#"},
		{"A", -3, "F#"},
		{"Gbb", 0, "Gbb"},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%v by %v", c.note, c.halfSteps)
		t.Run(name, func(t *testing.T) {
			n := MustParseNote(c.note)
			got := n.Transpose(c.halfSteps)
			assert.Equal(t, c.want, got.String())
			assert.Equal(t, ((n.Semitone()+c.halfSteps)%12+12)%12, got.Semitone())
		})
	}
}

func TestTransposeHugeShift(t *testing.T) {
	d := MustParseNote("D")
	assert.Equal(t, "A", d.Transpose(math.MaxInt).String())
	assert.Equal(t, "F#", d.Transpose(math.MinInt).String())
	assert.Equal(t, d.Transpose(math.MaxInt%12).String(), d.Transpose(math.MaxInt).String())
}
