// Package parser groups the tokens of a chord sheet into per-line phrases.
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/jsphweid/chordsheet/lexer"
	"github.com/jsphweid/chordsheet/model"
)

// Error is returned when the song cannot be tokenized.
type Error struct {
	Slice string
	err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error: %v", e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Parse turns a song into its lines of phrases. A chord belongs to the phrase
// that is closed by the next "[", newline or the end of the song, so the
// lyrics after "]" end up with the chord before them. Nothing is returned on
// error.
func Parse(song string) (*model.Lines, error) {
	lex := lexer.New(song)
	lines := model.NewLines()
	var phrase model.Phrase
	line := 0

	for {
		tok, err := lex.Next()
		if err == io.EOF {
			// store last phrase
			lines.AddPhrase(line, phrase)
			return lines, nil
		}
		if err != nil {
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				return nil, &Error{Slice: lexErr.Slice, err: err}
			}
			return nil, &Error{err: err}
		}

		switch tok.Kind {
		case lexer.Lyrics:
			phrase.Lyrics = tok.Text
			phrase.Start = tok.Span.Start
			phrase.End = tok.Span.End
		case lexer.OpenBracket:
			lines.AddPhrase(line, phrase)
			phrase = model.Phrase{}
		case lexer.Chord:
			phrase.Chord = model.NewChord(tok.Text)
		case lexer.CloseBracket:
		case lexer.NewLine:
			lines.AddPhrase(line, phrase)
			phrase = model.Phrase{}
			line++
		}
	}
}
