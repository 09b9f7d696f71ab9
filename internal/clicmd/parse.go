package clicmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/jerboa/internal/parser"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Jerboa file or expression and print ok/done/the AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading a file")
}

func runParse(_ *cobra.Command, args []string) error {
	source, name, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	ok, done, program := parser.Parse(source)
	fmt.Printf("ok=%t done=%t\n", ok, done)
	if !ok {
		exitWithError("%s did not parse as a complete stmt_list", name)
	}
	if !done {
		fmt.Fprintln(os.Stderr, "jerboa: warning: trailing input after a successful parse")
	}
	fmt.Println(program.String())
	return nil
}
