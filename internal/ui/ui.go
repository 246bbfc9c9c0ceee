// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the corelisp language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/reader"
	"github.com/corelisp/corelisp/internal/reader/parser"
	"github.com/corelisp/corelisp/internal/system/history"
)

const (
	prompt       = "* "
	continuation = "  "
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
}

// Run launches the line editor and sends each complete form to e.
// It returns when the user ends input.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	if err := history.Load(cli.ReadHistory); err != nil {
		Report(os.Stderr, err)
	}

	r := reader.New("stdin")

	for {
		p := prompt
		if r.Pending() {
			p = continuation
		}

		line, err := cli.Prompt(p)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			continue
		default:
			if !errors.Is(err, io.EOF) {
				Report(os.Stderr, err)
			}

			fmt.Fprintln(os.Stdout)

			if err := history.Save(cli.WriteHistory); err != nil {
				Report(os.Stderr, err)
			}

			return
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		Process(os.Stdout, os.Stderr, e, r, line+"\n")
	}
}

// Process scans text with r and evaluates every complete form with e.
// Values are printed to out. Errors are reported to errs and do not stop
// later forms from being read.
func Process(out, errs io.Writer, e Evaluator, r *reader.T, text string) {
	cs, err := r.Scan(text)
	if err != nil {
		Report(errs, err)

		return
	}

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			Report(errs, err)

			continue
		}

		fmt.Fprintln(out, literal.String(v))
	}
}

// Report writes err to w. Syntax errors already name their source.
func Report(w io.Writer, err error) {
	var serr *parser.Error
	if errors.As(err, &serr) {
		fmt.Fprintln(w, serr)

		return
	}

	fmt.Fprintf(w, "error: %v\n", err)
}

// completer returns a word completer over the names bound by e.
// Symbol names print in upper case but completion ignores case.
func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t\n()'`,") + 1

		word := strings.ToUpper(head[start:])
		head = head[:start]

		for _, n := range e.Names() {
			if strings.HasPrefix(n, word) {
				cs = append(cs, n)
			}
		}

		return head, cs, tail
	}
}
