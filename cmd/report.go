package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Creates a report",
	Long:  `Counts lines, phrases and chords in a chord sheet.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := loadLines(songPath(args))
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), analyze(lines))
	},
}

type songReport struct {
	numLines     int
	numPhrases   int
	numChords    int
	lyricBytes   uint64
	chordCounts  map[string]int
	voicings     map[string]int
	unknownChord []string
}

func analyze(lines *model.Lines) songReport {
	report := songReport{
		numLines:    lines.Len(),
		chordCounts: make(map[string]int),
		voicings:    make(map[string]int),
	}

	var lyricLengths []int
	for _, p := range lines.All() {
		report.numPhrases += 1
		lyricLengths = append(lyricLengths, len(p.Lyrics))
		if p.Chord == nil {
			continue
		}
		report.numChords += 1
		report.chordCounts[p.Chord.Chord] += 1

		sym, err := chord.ParseSymbol(p.Chord.Chord)
		if err != nil {
			report.unknownChord = append(report.unknownChord, p.Chord.Chord)
			continue
		}
		report.voicings[chord.CreateChordKey(sym.MidiKeys())] += 1
	}
	report.lyricBytes = util.Sum(lyricLengths)
	return report
}

func writeReport(w io.Writer, report songReport) error {
	fmt.Fprintf(w, "lines: %v\n", report.numLines)
	fmt.Fprintf(w, "phrases: %v\n", report.numPhrases)
	fmt.Fprintf(w, "chords: %v\n", report.numChords)
	fmt.Fprintf(w, "distinct chords: %v\n", len(report.chordCounts))
	fmt.Fprintf(w, "distinct voicings: %v\n", len(report.voicings))
	fmt.Fprintf(w, "lyric bytes: %v\n", report.lyricBytes)
	for _, name := range util.GetKeysSorted(report.chordCounts) {
		fmt.Fprintf(w, "  %v: %v\n", name, report.chordCounts[name])
	}
	if len(report.unknownChord) > 0 {
		fmt.Fprintf(w, "unreadable chords: %v\n", report.unknownChord)
	}
	return nil
}
