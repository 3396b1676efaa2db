package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var asSource bool

func init() {
	transposeCmd.Flags().BoolVar(&asSource, "source", false, "print a bracketed chord sheet instead of rendering")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <half-steps> [file]",
	Short: "Transposes every chord",
	Long: `Moves every chord by a number of half steps, e.g. "transpose 5 song.cho" or "transpose -- -2 song.cho".
Notes are respelled on the line of fifths, so a chord keeps the closest spelling.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		halfSteps, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "half steps must be a whole number, got %q", args[0])
		}
		lines, err := loadLines(songPath(args[1:]))
		if err != nil {
			return err
		}
		transposed, err := chord.TransposeLines(lines, halfSteps)
		if err != nil {
			return err
		}
		logger.Debug("Transposed song", zap.Int("half_steps", halfSteps))

		if asSource {
			fmt.Fprintln(cmd.OutOrStdout(), render.Source(transposed))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Render(transposed))
		return nil
	},
}
