package clicmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/jerboa/internal/dump"
	"github.com/cwbudde/jerboa/internal/interp"
	"github.com/cwbudde/jerboa/internal/parser"
)

var (
	runEval    string
	dumpState  bool
	dumpFormat string
	traceExec  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Jerboa program",
	Long: `Execute a Jerboa program from a file or inline source.

Examples:
  jerboa run script.jb
  jerboa run -e 'write("Hello, world!", cr)'
  jerboa run --dump-state script.jb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "run inline source instead of reading a file")
	runCmd.Flags().BoolVar(&dumpState, "dump-state", false, "print the final state dump to stderr after running")
	runCmd.Flags().StringVar(&dumpFormat, "dump-state-format", "json", "state dump format: json or yaml")
	runCmd.Flags().BoolVar(&traceExec, "trace", false, "trace statement execution to stderr")
}

func runScript(_ *cobra.Command, args []string) error {
	source, name, err := readSource(runEval, args)
	if err != nil {
		return err
	}

	ok, done, program := parser.Parse(source)
	if !ok {
		return fmt.Errorf("%s: parse failed", name)
	}
	if !done {
		fmt.Fprintf(os.Stderr, "jerboa: warning: trailing input after a successful parse of %s\n", name)
	}

	stdin := bufio.NewScanner(os.Stdin)
	ip := interp.New(
		func() string {
			if stdin.Scan() {
				return stdin.Text()
			}
			return ""
		},
		func(s string) { fmt.Print(s) },
	)
	if traceExec {
		ip.Trace = os.Stderr
	}

	state := interp.NewState()
	ip.Run(program, state)

	if dumpState {
		return printStateDump(state)
	}
	return nil
}

func printStateDump(state *interp.State) error {
	switch dumpFormat {
	case "yaml":
		out, err := dump.YAML(state)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, out)
	case "json":
		out, err := dump.JSON(state)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, out)
	default:
		return fmt.Errorf("unknown --dump-state-format %q (want json or yaml)", dumpFormat)
	}
	return nil
}
