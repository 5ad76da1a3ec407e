/*
File    : monkey/cmd/monkey/main.go
*/

// Command monkey is the interpreter's entry point: an interactive REPL by
// default, or a one-shot file-execution mode when given a path.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/monkeylang/monkey/environment"
	"github.com/monkeylang/monkey/eval"
	"github.com/monkeylang/monkey/internal/astdump"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
	"github.com/monkeylang/monkey/repl"
)

const version = "v0.1.0"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "-ast":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "usage: monkey -ast <file>")
				os.Exit(1)
			}
			runAST(os.Args[2])
		default:
			runFile(arg)
		}
		return
	}

	repl.New(version).Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Monkey - an interpreted programming language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                 Start the interactive REPL")
	yellowColor.Println("  monkey <path-to-file>  Execute a Monkey source file")
	yellowColor.Println("  monkey --help          Display this help message")
	yellowColor.Println("  monkey --version       Display version information")
}

func showVersion() {
	cyanColor.Printf("Monkey %s\n", version)
}

// runFile reads, parses, and evaluates a single source file against a
// fresh environment. Parse errors or an evaluation error exit 1; a panic
// during evaluation is reported the same way rather than crashing the
// process.
func runFile(path string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "runtime error: %v\n", r)
			os.Exit(1)
		}
	}()

	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(1)
	}

	evaluator := eval.New()
	evaluator.SetWriter(os.Stdout)
	result := evaluator.Eval(program, environment.New())

	if result == nil {
		return
	}
	if result.Type() == object.ErrorObj {
		redColor.Fprintf(os.Stderr, "Runtime error: %s\n", result.(*object.Error).Message)
		os.Exit(1)
	}
	if result.Type() != object.NullObj {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}

// runAST parses path and prints its AST via internal/astdump instead of
// evaluating it. Undocumented debug flag, not part of the language surface.
func runAST(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(1)
	}

	fmt.Print(astdump.Dump(program))
}
