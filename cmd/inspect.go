package cmd

import (
	"fmt"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Prints every chord sounding in a MIDI file, e.g. one written by "midi".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		for _, held := range midi.Chords(s) {
			fmt.Fprintf(cmd.OutOrStdout(), "tick: %v\n", held.Tick)
			fmt.Fprintf(cmd.OutOrStdout(), "keys: %v\n", chord.CreateChordKey(held.Keys))
		}
		return nil
	},
}
