package model

// Phrase is a subsection of a line of a song. A phrase has zero or one chords.
// Start and End are byte offsets into the whole song text.
type Phrase struct {
	Lyrics string `json:"lyrics"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Chord  *Chord `json:"chord,omitempty"`
	Line   int    `json:"line"`
}

func NewPhrase(lyrics string, start int, end int, chord *Chord, line int) Phrase {
	return Phrase{
		Lyrics: lyrics,
		Start:  start,
		End:    end,
		Chord:  chord,
		Line:   line,
	}
}

// ChordText returns the phrase's chord text, or "" when it has none.
func (p Phrase) ChordText() string {
	return p.Chord.Text()
}

// Lines maps a line index to the phrases of that line in left-to-right order.
// Lines are kept in a slice indexed by line number so iteration is always in
// ascending line order.
type Lines struct {
	lines [][]Phrase
}

func NewLines() *Lines {
	return &Lines{}
}

// AddPhrase appends p to line. Skipped line indices stay empty.
func (l *Lines) AddPhrase(line int, p Phrase) {
	for len(l.lines) <= line {
		l.lines = append(l.lines, nil)
	}
	p.Line = line
	l.lines[line] = append(l.lines[line], p)
}

// Phrases returns the phrases of line, or nil when the line has none.
func (l *Lines) Phrases(line int) []Phrase {
	if line < 0 || line >= len(l.lines) {
		return nil
	}
	return l.lines[line]
}

// Indices returns the indices of the lines that hold at least one phrase, in
// ascending order.
func (l *Lines) Indices() []int {
	var res []int
	for i, phrases := range l.lines {
		if len(phrases) > 0 {
			res = append(res, i)
		}
	}
	return res
}

// Len is the number of lines that hold at least one phrase.
func (l *Lines) Len() int {
	return len(l.Indices())
}

// Each calls fn for each non-empty line in ascending order.
func (l *Lines) Each(fn func(line int, phrases []Phrase)) {
	for i, phrases := range l.lines {
		if len(phrases) > 0 {
			fn(i, phrases)
		}
	}
}

// All returns every phrase in line order.
func (l *Lines) All() []Phrase {
	var res []Phrase
	l.Each(func(_ int, phrases []Phrase) {
		res = append(res, phrases...)
	})
	return res
}
