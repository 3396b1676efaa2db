// Package render prints parsed lines as a chord row above a lyric row.
package render

import (
	"strings"

	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/util"
)

// ChordPadding is the number of spaces that follow a chord so the next chord
// starts above the next phrase. It is never negative: a chord wider than its
// lyrics runs into the next column.
func ChordPadding(lyric string, chord string) int {
	return util.Max(0, len(lyric)-len(chord))
}

// Line renders one line's phrases as its chord row and lyric row.
func Line(phrases []model.Phrase) (chordRow string, lyricRow string) {
	var chords, lyrics strings.Builder
	for _, p := range phrases {
		chord := p.ChordText()
		chords.WriteString(chord)
		chords.WriteString(strings.Repeat(" ", ChordPadding(p.Lyrics, chord)))
		lyrics.WriteString(p.Lyrics)
	}
	return chords.String(), lyrics.String()
}

// Render prints every line in ascending order as a chord row, a newline, the
// lyric row and another newline.
func Render(lines *model.Lines) string {
	var b strings.Builder
	lines.Each(func(_ int, phrases []model.Phrase) {
		chordRow, lyricRow := Line(phrases)
		b.WriteString(chordRow)
		b.WriteString("\n")
		b.WriteString(lyricRow)
		b.WriteString("\n")
	})
	return b.String()
}

// Source writes lines back out as a bracketed chord sheet. Parsing the result
// gives back the same lyrics and chords.
func Source(lines *model.Lines) string {
	var rows []string
	lines.Each(func(_ int, phrases []model.Phrase) {
		var b strings.Builder
		for _, p := range phrases {
			if p.Chord != nil {
				b.WriteString("[")
				b.WriteString(p.Chord.Chord)
				b.WriteString("]")
			}
			b.WriteString(p.Lyrics)
		}
		rows = append(rows, b.String())
	})
	return strings.Join(rows, "\n")
}
