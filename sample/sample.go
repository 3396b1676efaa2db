package sample

import (
	"fmt"

	"github.com/jsphweid/chordsheet/model"
)

// Create copies count lines starting at line index from into a new table.
// Line indices and spans are kept as they were in the full song. A count of 0
// takes every line from `from` on.
func Create(lines *model.Lines, from int, count int) (*model.Lines, error) {
	if from < 0 || count < 0 {
		return nil, fmt.Errorf("invalid excerpt %d:%d", from, count)
	}

	res := model.NewLines()
	for _, i := range lines.Indices() {
		if i < from || (count > 0 && i >= from+count) {
			continue
		}
		for _, p := range lines.Phrases(i) {
			res.AddPhrase(i, p)
		}
	}
	return res, nil
}

// ParseRange reads a "from:to" line range as used on the command line. Either
// side may be left out: ":4" is the first four lines and "2:" is everything
// from line 2 on.
func ParseRange(s string) (from int, count int, err error) {
	var to int
	switch {
	case s == "" || s == ":":
		return 0, 0, nil
	case s[0] == ':':
		_, err = fmt.Sscanf(s, ":%d", &to)
	case s[len(s)-1] == ':':
		_, err = fmt.Sscanf(s, "%d:", &from)
		return from, 0, err
	default:
		_, err = fmt.Sscanf(s, "%d:%d", &from, &to)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("could not read line range %q: %w", s, err)
	}
	if to <= from {
		return 0, 0, fmt.Errorf("line range %q is empty", s)
	}
	return from, to - from, nil
}
