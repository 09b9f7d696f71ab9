package clicmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/jerboa/internal/lexer"
)

var lexEval string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Jerboa file or expression and print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
}

func runLex(_ *cobra.Command, args []string) error {
	source, _, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	for _, tok := range lexer.All(source) {
		fmt.Printf("%-15s %-4d:%-3d %q\n", tok.Type, tok.Pos.Line, tok.Pos.Column, tok.Text)
	}
	return nil
}
