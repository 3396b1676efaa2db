package cmd

import (
	"fmt"

	"github.com/jsphweid/chordsheet/file"
	"github.com/jsphweid/chordsheet/lexer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Prints the tokens of a chord sheet",
	Long:  `Prints the kind, byte span and text of every token in a chord sheet.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		song, err := file.ReadSong(songPath(args))
		if err != nil {
			return err
		}
		tokens, err := lexer.Tokenize(song)
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		return nil
	},
}
