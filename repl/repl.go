/*
File    : monkey/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop: an interactive session
// that parses and evaluates one line at a time against a single persistent
// environment, using readline for line editing/history and color for
// feedback.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/eval"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
)

const prompt = ">>> "

var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a single interactive session: one evaluator, one environment,
// both shared across every line entered until EOF.
type Repl struct {
	Version string
}

// New creates a Repl.
func New(version string) *Repl {
	return &Repl{Version: version}
}

// Start runs the main loop until EOF (Ctrl+D) or a readline error, at
// which point it prints a goodbye line and returns — the caller exits
// with status 0 either way, per the REPL's contract.
func (r *Repl) Start(writer io.Writer) {
	cyanColor.Fprintf(writer, "Monkey %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type an expression and press enter. Ctrl+D to exit.")

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()
	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, evaluator, env)
	}
}

// evalLine parses and evaluates a single line of input, printing the
// result (or errors) to writer. It recovers from any evaluator panic so a
// single bad line can't bring down the session.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator, env *environment.Environment) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "runtime error: %v\n", rec)
		}
	}()

	p := parser.New(line)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ErrorObj {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
