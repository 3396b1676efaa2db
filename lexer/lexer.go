// Package lexer splits a chord sheet into chord, bracket, newline and lyric
// tokens.
package lexer

import (
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/jsphweid/chordsheet/chord"
)

type rule struct {
	kind Kind
	re   *regexp.Regexp
}

func anchored(pattern string) *regexp.Regexp {
	r := regexp.MustCompile(`^(?:` + pattern + `)`)
	r.Longest()
	return r
}

// rules are listed by priority. At every offset the longest match wins and
// equal lengths go to the earlier rule, so "Ab" is a Chord but "Also" is
// Lyrics. A lone "A" is always a Chord.
var rules = []rule{
	{Chord, anchored(chord.Pattern)},
	{OpenBracket, anchored(`\[`)},
	{CloseBracket, anchored(`\]`)},
	{NewLine, anchored(`\n|\r\n`)},
	{Lyrics, anchored(`[a-zA-Z \-'",]+`)},
}

// Lexer is a pull-based token stream over one song. It is not safe for
// concurrent use.
type Lexer struct {
	text string
	pos  int
	err  error
}

func New(text string) *Lexer {
	return &Lexer{text: text}
}

// Next returns the next token, io.EOF once the text is exhausted, or an
// *Error for text no rule matches. After an error the lexer keeps returning
// it.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	if l.pos >= len(l.text) {
		return Token{}, io.EOF
	}

	rest := l.text[l.pos:]
	best, bestLen := Token{}, 0
	for _, r := range rules {
		loc := r.re.FindStringIndex(rest)
		if loc == nil || loc[1] <= bestLen {
			continue
		}
		bestLen = loc[1]
		best = Token{
			Kind: r.kind,
			Text: rest[:loc[1]],
			Span: Span{Start: l.pos, End: l.pos + loc[1]},
		}
	}

	if bestLen == 0 {
		_, size := utf8.DecodeRuneInString(rest)
		l.err = &Error{
			Slice: rest[:size],
			Span:  Span{Start: l.pos, End: l.pos + size},
		}
		return Token{}, l.err
	}

	l.pos += bestLen
	return best, nil
}

// Tokenize lexes the whole text. No tokens are returned on error.
func Tokenize(text string) ([]Token, error) {
	var tokens []Token
	l := New(text)
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
