package clicmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/cwbudde/jerboa/internal/interp"
	"github.com/cwbudde/jerboa/internal/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Jerboa read-eval-print loop",
	Long: `Start an interactive session: each accepted line is parsed as a
standalone statement list and interpreted against one long-lived State for
the session, so variables, arrays, and function definitions persist across
lines. readnum() reads from the same line editor, one line at a time, so a
program mixing write and readnum behaves the same interactively as from a
file.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	rl, err := readline.New("jerboa> ")
	if err != nil {
		return fmt.Errorf("starting repl: %w", err)
	}
	defer rl.Close()

	state := interp.NewState()
	ip := interp.New(
		func() string { return readReplLine(rl) },
		func(s string) { fmt.Fprint(rl.Stdout(), s) },
	)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		ok, _, stmts := parser.Parse(line)
		if !ok {
			fmt.Fprintf(rl.Stderr(), "jerboa: could not parse %q\n", line)
			continue
		}
		ip.Run(stmts, state)
	}
}

// readReplLine backs readnum() in the REPL: one more line from the same
// editor, with no prompt of its own since the program's own write() calls
// carry whatever prompt text the script wants.
func readReplLine(rl *readline.Instance) string {
	line, err := rl.Readline()
	if err != nil {
		return ""
	}
	return line
}
