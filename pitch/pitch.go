// Package pitch spells notes on the line of fifths, where enharmonic
// equivalents such as F# and Gb stay distinct.
package pitch

import (
	"errors"
	"fmt"
)

const (
	HalfStep  = 1
	WholeStep = HalfStep * 2
)

// pitchSpaceSize is the number of distinct letter names in the 7-tone pitch space.
const pitchSpaceSize = 7

// MinPosition and MaxPosition bound the line of fifths reachable with at most
// two accidentals (Fbb and B## respectively).
const (
	MinPosition = pitchSpaceSize*int(DoubleFlat) + int(F)
	MaxPosition = pitchSpaceSize*int(DoubleSharp) + int(B)
)

var (
	ErrUnknownPitch      = errors.New("unknown pitch")
	ErrUnknownAccidental = errors.New("unknown accidental")
)

// PitchClass is a letter name. The order of the values is load-bearing: each
// one is a perfect fifth above the previous, so F to C is a P5.
type PitchClass int

const (
	F PitchClass = iota
	C
	G
	D
	A
	E
	B
)

var pitchClassNames = [pitchSpaceSize]string{"F", "C", "G", "D", "A", "E", "B"}

func ParsePitchClass(s string) (PitchClass, error) {
	for i, name := range pitchClassNames {
		if s == name {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, s)
}

func PitchClassFromInt(i int) (PitchClass, error) {
	if i < 0 || i >= pitchSpaceSize {
		return 0, fmt.Errorf("expected int 0..6, cannot map int '%d' to PitchClass", i)
	}
	return PitchClass(i), nil
}

func (p PitchClass) String() string {
	if p < 0 || int(p) >= pitchSpaceSize {
		return fmt.Sprintf("PitchClass(%d)", int(p))
	}
	return pitchClassNames[p]
}

// Accidental alters a pitch class, measured in half steps.
type Accidental int

const (
	DoubleFlat  Accidental = -WholeStep
	Flat        Accidental = -HalfStep
	Natural     Accidental = 0
	Sharp       Accidental = HalfStep
	DoubleSharp Accidental = WholeStep
)

func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case "##":
		return DoubleSharp, nil
	case "#":
		return Sharp, nil
	case "♮":
		return Natural, nil
	case "b":
		return Flat, nil
	case "bb":
		return DoubleFlat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAccidental, s)
}

func (a Accidental) HalfSteps() int {
	return int(a)
}

func (a Accidental) String() string {
	switch a {
	case DoubleSharp:
		return "##"
	case Sharp:
		return "#"
	case Natural:
		return "♮"
	case Flat:
		return "b"
	case DoubleFlat:
		return "bb"
	}
	return fmt.Sprintf("Accidental(%d)", int(a))
}

// Note is a pitch class with an optional accidental. HasAccidental
// distinguishes an explicit natural sign from no sign at all.
type Note struct {
	Pitch         PitchClass
	Accidental    Accidental
	HasAccidental bool
}

// ParseNote reads the first character as the pitch class and anything after it
// as an accidental.
func ParseNote(s string) (Note, error) {
	if s == "" {
		return Note{}, fmt.Errorf("%w: %q", ErrUnknownPitch, s)
	}
	pc, err := ParsePitchClass(s[:1])
	if err != nil {
		return Note{}, err
	}
	n := Note{Pitch: pc}
	if len(s) > 1 {
		acc, err := ParseAccidental(s[1:])
		if err != nil {
			return Note{}, err
		}
		n.Accidental = acc
		n.HasAccidental = true
	}
	return n, nil
}

// MustParseNote is like ParseNote but panics on error.
func MustParseNote(s string) Note {
	n, err := ParseNote(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Position places the note on the line of fifths:
// 7 * accidental half steps + pitch class index.
func (n Note) Position() int {
	return pitchSpaceSize*n.Accidental.HalfSteps() + int(n.Pitch)
}

// FromPosition is the inverse of Position.
func FromPosition(p int) (Note, error) {
	if p < MinPosition || p > MaxPosition {
		return Note{}, fmt.Errorf("line of fifths position %d out of range %d..%d", p, MinPosition, MaxPosition)
	}
	// floor division so that negative positions land on the right accidental
	acc := p / pitchSpaceSize
	idx := p % pitchSpaceSize
	if idx < 0 {
		idx += pitchSpaceSize
		acc--
	}
	return Note{
		Pitch:         PitchClass(idx),
		Accidental:    Accidental(acc),
		HasAccidental: acc != 0,
	}, nil
}

// Semitone is the sounding pitch class of the note, 0..11 with C = 0.
func (n Note) Semitone() int {
	return semitoneAt(n.Position())
}

func semitoneAt(position int) int {
	s := (7 * (position - 1)) % 12
	if s < 0 {
		s += 12
	}
	return s
}

// Enharmonic reports whether two notes sound the same.
func (n Note) Enharmonic(other Note) bool {
	return n.Semitone() == other.Semitone()
}

// Transpose returns the note halfSteps away. Of the spellings that sound
// right, the one closest to n on the line of fifths is chosen. Ties go to the
// spelling with fewer accidentals, then to sharps when moving up and flats
// when moving down.
func (n Note) Transpose(halfSteps int) Note {
	// reduce first so huge shifts cannot overflow
	target := (n.Semitone() + halfSteps%12 + 12) % 12
	from := n.Position()

	best, found := 0, false
	for q := MinPosition; q <= MaxPosition; q++ {
		if semitoneAt(q) != target {
			continue
		}
		if !found || closer(q, best, from, halfSteps) {
			best, found = q, true
		}
	}

	// every semitone has at least two spellings in MinPosition..MaxPosition
	res, _ := FromPosition(best)
	return res
}

func closer(q, best, from, halfSteps int) bool {
	dq, db := abs(q-from), abs(best-from)
	if dq != db {
		return dq < db
	}
	aq, ab := accidentalsAt(q), accidentalsAt(best)
	if aq != ab {
		return aq < ab
	}
	if halfSteps >= 0 {
		return q > best
	}
	return q < best
}

func accidentalsAt(position int) int {
	n, _ := FromPosition(position)
	return abs(n.Accidental.HalfSteps())
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func (n Note) String() string {
	if !n.HasAccidental {
		return n.Pitch.String()
	}
	return n.Pitch.String() + n.Accidental.String()
}
