package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/jerboa/internal/ast"
)

// InputFunc returns one line of user input with its line terminator
// removed; it is called once per readnum evaluation (spec.md §6).
type InputFunc func() string

// OutputFunc consumes a string and emits it on the sink without adding a
// newline; newlines are produced only by an explicit `cr` write argument.
type OutputFunc func(s string)

// Interpreter walks an AST against a State, invoking the I/O callbacks.
// It holds no resources across invocations other than the State the caller
// supplies (spec.md §5).
type Interpreter struct {
	Input  InputFunc
	Output OutputFunc

	// Trace, if non-nil, receives one line per executed statement. This is
	// the ambient debug-tracing hook spec.md §1 calls out as a driver
	// concern the core only needs to expose, not implement (see
	// SPEC_FULL.md §6.3).
	Trace io.Writer
}

// New creates an Interpreter wired to the given callbacks.
func New(input InputFunc, output OutputFunc) *Interpreter {
	return &Interpreter{Input: input, Output: output}
}

// returnSignal is the typed non-local exit of spec.md §9 ("Return semantics
// across calls"): RETURN_STMT panics with one, and callFunc recovers it
// at the function-call boundary, converting it into the call's result.
// Loops and conditionals within the same frame let it propagate upward
// untouched, since only callFunc (and Run, for the top level) recovers.
type returnSignal struct {
	value int
}

// Run executes program against state, mutating it in place, and returns it
// for convenience (spec.md §6: `interp(ast, state, input_line, output_text)
// -> state`). A top-level `return` terminates the whole program.
func (ip *Interpreter) Run(program *ast.StmtList, state *State) (result *State) {
	result = state
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(returnSignal); ok {
				return // top-level return: stop the program
			}
			panic(r) // anything else is a genuine interpreter bug
		}
	}()
	ip.execStmtList(program, state)
	return state
}

func (ip *Interpreter) tracef(format string, args ...any) {
	if ip.Trace != nil {
		fmt.Fprintf(ip.Trace, format+"\n", args...)
	}
}
