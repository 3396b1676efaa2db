package chord

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordsheet/pitch"
)

// Pattern is the whitelisted chord symbol grammar: root, accidental, quality,
// extension and an optional slash bass.
// https://stackoverflow.com/questions/11229080/regex-for-matching-a-music-chord
const Pattern = `[A-G](##|#|bb|b)?(mMaj|Maj|maj|min|M|m|sus|dim|aug)?(1[0-2]|[1-9])?(/[A-G](##|#|bb|b)?)?`

var ErrInvalidSymbol = errors.New("invalid chord symbol")

var symbolRegexp = func() *regexp.Regexp {
	r := regexp.MustCompile(`^` + Pattern + `$`)
	r.Longest()
	return r
}()

type Quality int

const (
	Major Quality = iota
	Minor
	MajorSeventh
	MinorMajor
	Suspended
	Diminished
	Augmented
)

var qualityNames = map[Quality]string{
	Major:        "major",
	Minor:        "minor",
	MajorSeventh: "major seventh",
	MinorMajor:   "minor major",
	Suspended:    "suspended",
	Diminished:   "diminished",
	Augmented:    "augmented",
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

func parseQuality(s string) Quality {
	switch s {
	case "m", "min":
		return Minor
	case "M", "Maj", "maj":
		return MajorSeventh
	case "mMaj":
		return MinorMajor
	case "sus":
		return Suspended
	case "dim":
		return Diminished
	case "aug":
		return Augmented
	}
	return Major
}

// Symbol is the semantic reading of a chord symbol such as "Ebm9" or "C/G".
type Symbol struct {
	Root    pitch.Note
	Quality Quality
	// Extension is 0 when the symbol has no number.
	Extension int
	Bass      *pitch.Note

	// suffix keeps the quality spelling ("min" vs "m") for String.
	suffix string
}

func ParseSymbol(s string) (Symbol, error) {
	m := symbolRegexp.FindStringSubmatch(s)
	if m == nil {
		return Symbol{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}

	root, err := pitch.ParseNote(s[:1+len(m[1])])
	if err != nil {
		return Symbol{}, err
	}

	sym := Symbol{
		Root:    root,
		Quality: parseQuality(m[2]),
		suffix:  m[2],
	}
	if m[3] != "" {
		sym.Extension, _ = strconv.Atoi(m[3])
	}
	if m[4] != "" {
		bass, err := pitch.ParseNote(m[4][1:])
		if err != nil {
			return Symbol{}, err
		}
		sym.Bass = &bass
	}
	return sym, nil
}

// Transpose shifts the root and the bass by halfSteps, respelling both on the
// line of fifths.
func (s Symbol) Transpose(halfSteps int) Symbol {
	res := s
	res.Root = s.Root.Transpose(halfSteps)
	if s.Bass != nil {
		bass := s.Bass.Transpose(halfSteps)
		res.Bass = &bass
	}
	return res
}

func (s Symbol) String() string {
	var b strings.Builder
	b.WriteString(s.Root.String())
	suffix := s.suffix
	if suffix == "" && s.Quality != Major {
		suffix = defaultSuffix[s.Quality]
	}
	b.WriteString(suffix)
	if s.Extension != 0 {
		b.WriteString(strconv.Itoa(s.Extension))
	}
	if s.Bass != nil {
		b.WriteString("/")
		b.WriteString(s.Bass.String())
	}
	return b.String()
}

var defaultSuffix = map[Quality]string{
	Minor:        "m",
	MajorSeventh: "Maj",
	MinorMajor:   "mMaj",
	Suspended:    "sus",
	Diminished:   "dim",
	Augmented:    "aug",
}

// Intervals returns the chord tones as semitones above the root, sorted and
// without duplicates.
func (s Symbol) Intervals() []int {
	var tones []int
	switch s.Quality {
	case Minor, MinorMajor:
		tones = []int{0, 3, 7}
	case Diminished:
		tones = []int{0, 3, 6}
	case Augmented:
		tones = []int{0, 4, 8}
	case Suspended:
		// plain "sus" is a sus4
		third := 5
		if s.Extension == 2 {
			third = 2
		}
		tones = []int{0, third, 7}
	default:
		tones = []int{0, 4, 7}
	}

	seventh := 10
	switch s.Quality {
	case MajorSeventh, MinorMajor:
		seventh = 11
	case Diminished:
		seventh = 9
	}

	switch s.Extension {
	case 5:
		if s.Quality == Major {
			tones = []int{0, 7}
		}
	case 2:
		if s.Quality != Suspended {
			tones = append(tones, 2)
		}
	case 4:
		if s.Quality != Suspended {
			tones = append(tones, 5)
		}
	case 6:
		tones = append(tones, 9)
	case 7:
		tones = append(tones, seventh)
	case 9:
		tones = append(tones, seventh, 14)
	case 11:
		tones = append(tones, seventh, 14, 17)
	}
	return dedupe(tones)
}

func dedupe(tones []int) []int {
	sort.Ints(tones)
	res := tones[:0]
	for i, t := range tones {
		if i == 0 || t != tones[i-1] {
			res = append(res, t)
		}
	}
	return res
}

// middle C in MIDI key numbers
const rootOctave = 60

// MidiKeys voices the chord with its root in the octave above middle C. A
// slash bass is placed an octave below.
func (s Symbol) MidiKeys() []uint8 {
	var keys []uint8
	if s.Bass != nil {
		keys = append(keys, uint8(rootOctave-12+s.Bass.Semitone()))
	}
	root := rootOctave + s.Root.Semitone()
	for _, interval := range s.Intervals() {
		keys = append(keys, uint8(root+interval))
	}
	return keys
}

// CreateChordKey renders sorted keys as a stable "60-64-67" style key.
func CreateChordKey(keys []uint8) string {
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, key := range sorted {
		res += fmt.Sprintf("%v", key)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}
