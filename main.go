// Released under an MIT license. See LICENSE.

/*
Corelisp is an interpreter for a small core of Common Lisp: exact integers
and ratios, floats, symbols in packages, cons cells, lexical closures,
quasiquote and a builtin procedure library.

    * (defun square (x) (* x x))
    #<FUNCTION SQUARE>
    * (square 3/2)
    9/4
    * `(1 ,@(list 2 3) 4)
    (1 2 3 4)

Corelisp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/engine"
	"github.com/corelisp/corelisp/internal/reader"
	"github.com/corelisp/corelisp/internal/system/options"
	"github.com/corelisp/corelisp/internal/ui"
)

func main() {
	options.Parse()

	e := engine.New()

	if options.Interactive() {
		ui.Run(e)

		return
	}

	os.Exit(batch(e, os.Stdin, os.Stdout, os.Stderr))
}

// batch evaluates the files named on the command line, then any -c
// expression. With neither, it evaluates stdin. It returns the exit status.
func batch(e *engine.T, stdin io.Reader, stdout, stderr io.Writer) int {
	for _, path := range options.Files() {
		text, err := os.ReadFile(path)
		if err != nil {
			ui.Report(stderr, err)

			return 1
		}

		if !run(e, path, string(text), io.Discard, stderr) {
			return 1
		}
	}

	if expression := options.Expression(); expression != "" {
		if !run(e, "command", expression, stdout, stderr) {
			return 1
		}
	} else if len(options.Files()) == 0 {
		text, err := io.ReadAll(stdin)
		if err != nil {
			ui.Report(stderr, err)

			return 1
		}

		if !run(e, "stdin", string(text), stdout, stderr) {
			return 1
		}
	}

	return 0
}

// run evaluates every form in text, printing each value to out.
// It stops at the first error.
func run(e *engine.T, name, text string, out, errs io.Writer) bool {
	cs, err := reader.Read(name, text)
	if err != nil {
		ui.Report(errs, err)

		return false
	}

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			ui.Report(errs, err)

			return false
		}

		fmt.Fprintln(out, literal.String(v))
	}

	return true
}
