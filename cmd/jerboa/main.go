// Command jerboa is the CLI entry point: lex, parse, run, and repl
// subcommands over the Jerboa language core.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/jerboa/internal/clicmd"
)

func main() {
	if err := clicmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
