package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesKeepAscendingOrder(t *testing.T) {
	lines := NewLines()
	lines.AddPhrase(2, NewPhrase("c", 4, 5, nil, 0))
	lines.AddPhrase(0, NewPhrase("a", 0, 1, nil, 0))
	lines.AddPhrase(0, NewPhrase("b", 1, 2, NewChord("G"), 0))

	assert := assert.New(t)
	assert.Equal([]int{0, 2}, lines.Indices())
	assert.Equal(2, lines.Len())
	assert.Nil(lines.Phrases(1))
	assert.Nil(lines.Phrases(-1))
	assert.Nil(lines.Phrases(9))

	var seen []string
	for _, p := range lines.All() {
		seen = append(seen, p.Lyrics)
	}
	assert.Equal([]string{"a", "b", "c"}, seen)
	assert.Equal(2, lines.Phrases(2)[0].Line)
}

func TestChordText(t *testing.T) {
	var none *Chord
	assert.Equal(t, "", none.Text())
	assert.Equal(t, "", NewPhrase("la", 0, 2, nil, 0).ChordText())
	assert.Equal(t, "Am", NewPhrase("la", 0, 2, NewChord("Am"), 0).ChordText())
}
