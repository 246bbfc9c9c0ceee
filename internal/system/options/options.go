// Released under an MIT license. See LICENSE.

// Package options parses corelisp's command-line options.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "corelisp 0.1.0"

//nolint:gochecknoglobals
var (
	expression  string
	files       []string
	interactive bool
	usage       = `corelisp

Usage:
  corelisp [-i] [-c EXPRESSION] [FILE...]
  corelisp -h
  corelisp -v

Arguments:
  FILE  Path to a file of corelisp forms, evaluated in order.

Options:
  -c, --command=EXPRESSION  Evaluate the expression and print its value.
  -i, --interactive         Invert interactive mode.
  -h, --help                Display this help.
  -v, --version             Print corelisp version.

If corelisp's stdin is a TTY, and corelisp was invoked with no expression
and no files, interactive mode is enabled. Otherwise, it is disabled.
`
)

// Expression returns the expression passed with -c, if any.
func Expression() string {
	return expression
}

// Files returns the file operands.
func Files() []string {
	return files
}

// Interactive returns true if corelisp should run the line editor.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. Help and version requests exit the process.
func Parse() {
	parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

func parse(argv []string, terminal bool) {
	if argv == nil {
		// Docopt reads os.Args when argv is nil.
		argv = []string{}
	}

	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	expression, _ = opts.String("--command")

	files, _ = opts["FILE"].([]string)

	interactive = expression == "" && len(files) == 0 && terminal

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}
