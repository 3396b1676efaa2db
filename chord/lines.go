package chord

import (
	"fmt"

	"github.com/jsphweid/chordsheet/model"
)

// TransposeLines returns a copy of lines with every chord transposed by
// halfSteps. Spans still point into the original song text.
func TransposeLines(lines *model.Lines, halfSteps int) (*model.Lines, error) {
	res := model.NewLines()
	for _, i := range lines.Indices() {
		for _, p := range lines.Phrases(i) {
			if p.Chord != nil {
				sym, err := ParseSymbol(p.Chord.Chord)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", i, err)
				}
				p.Chord = model.NewChord(sym.Transpose(halfSteps).String())
			}
			res.AddPhrase(i, p)
		}
	}
	return res, nil
}
