// Package clicmd implements the jerboa CLI driver: the lex/parse/run/repl
// command tree spec.md §1 explicitly treats as an external collaborator,
// built here because spec.md §6 describes exactly the interface it wires
// together and a complete repository needs a concrete entry point.
package clicmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set by build flags; it defaults to a development marker.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "jerboa",
	Short: "Jerboa language lexer, parser, and interpreter",
	Long: `jerboa is a small imperative scripting language: a global triple
of simple variables, array variables, and parameterless functions, driven
by write/if/while/return/assignment statements over integer-valued
expressions.

This CLI is the driver around the language core (internal/lexer,
internal/parser, internal/interp): it is not part of the language
specification itself, only a thin wrapper around its three entry points.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted by every subcommand; no subcommand reads it")
}

func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jerboa: "+format+"\n", args...)
	os.Exit(1)
}

// readSource resolves the (eval, args) flag/positional convention shared by
// run/lex/parse: either -e/--eval inline text, or a single file argument.
func readSource(eval string, args []string) (source, name string, err error) {
	switch {
	case eval != "":
		return eval, "<eval>", nil
	case len(args) == 1:
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline source")
	}
}
