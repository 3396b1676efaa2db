package model

// Chord is the raw chord text as it appeared between brackets. It carries no
// musical meaning; see the chord package for that.
type Chord struct {
	Chord string `json:"chord"`
}

func NewChord(s string) *Chord {
	return &Chord{Chord: s}
}

// Text returns the chord text, or "" for a nil chord.
func (c *Chord) Text() string {
	if c == nil {
		return ""
	}
	return c.Chord
}
