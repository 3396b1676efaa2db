package lexer

import "fmt"

type Kind int

const (
	Chord Kind = iota
	OpenBracket
	CloseBracket
	NewLine
	Lyrics
)

var kindNames = map[Kind]string{
	Chord:        "Chord",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	NewLine:      "NewLine",
	Lyrics:       "Lyrics",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a [Start, End) byte range in the song text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

type Token struct {
	Kind Kind
	Text string
	Span Span
}

func (t Token) String() string {
	return fmt.Sprintf("%v %v %q", t.Kind, t.Span, t.Text)
}

// Error reports text that matches no token pattern.
type Error struct {
	Slice string
	Span  Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("token error: %q at %v", e.Slice, e.Span)
}
