package cmd

import (
	"fmt"

	"github.com/jsphweid/chordsheet/render"
	"github.com/jsphweid/chordsheet/sample"
	"github.com/spf13/cobra"
)

var lineRange string

func init() {
	renderCmd.Flags().StringVar(&lineRange, "lines", "", `only render lines from:to, e.g. "2:6"`)
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Renders chords above lyrics",
	Long:  `Renders a chord sheet with a chord row above each lyric row. Reads stdin when no file or "-" is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := loadLines(songPath(args))
		if err != nil {
			return err
		}
		if lineRange != "" {
			from, count, err := sample.ParseRange(lineRange)
			if err != nil {
				return err
			}
			lines, err = sample.Create(lines, from, count)
			if err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Render(lines))
		return nil
	},
}
