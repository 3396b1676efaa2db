package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/chordsheet/midi"
	"github.com/jsphweid/chordsheet/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	tempo         float64
	beatsPerChord int
)

func init() {
	midiCmd.Flags().Float64Var(&tempo, "tempo", 0, "beats per minute (default from config)")
	midiCmd.Flags().IntVar(&beatsPerChord, "beats", 0, "beats each chord is held (default from config)")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <file> <out.mid>",
	Short: "Exports the chords as a MIDI file",
	Long:  `Writes the chord progression of a chord sheet to a Standard MIDI File, one held chord per bracketed chord.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := loadLines(args[0])
		if err != nil {
			return err
		}

		opts := midiOptions()
		opts.Name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))

		if err := writeMidiFile(args[1], lines, opts); err != nil {
			return errors.Wrapf(err, "could not export %s", args[0])
		}
		logger.Info("Wrote midi file",
			zap.String("path", args[1]),
			zap.Float64("tempo", opts.Tempo),
			zap.Int("beats_per_chord", opts.BeatsPerChord))
		return nil
	},
}

// writeMidiFile removes path again when the export fails so no half written
// file is left behind.
func writeMidiFile(path string, lines *model.Lines, opts midi.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create midi file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "could not close midi file")
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return midi.Write(f, lines, opts)
}

func midiOptions() midi.Options {
	opts := midi.Options{
		Tempo:         cfg.Midi.Tempo,
		BeatsPerChord: cfg.Midi.BeatsPerChord,
		Velocity:      cfg.Midi.Velocity,
		Channel:       cfg.Midi.Channel,
	}
	if tempo > 0 {
		opts.Tempo = tempo
	}
	if beatsPerChord > 0 {
		opts.BeatsPerChord = beatsPerChord
	}
	return opts
}
