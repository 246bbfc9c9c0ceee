// Released under an MIT license. See LICENSE.

// Package lisp embeds a corelisp interpreter in a Go program.
//
// Every Interpreter has its own global environment. An Interpreter is not
// safe for concurrent use.
package lisp

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/sym"
	"github.com/corelisp/corelisp/internal/engine"
	"github.com/corelisp/corelisp/internal/reader"
)

// Value is a corelisp value.
type Value = cell.I

// Interpreter evaluates corelisp source text.
type Interpreter struct {
	engine *engine.T
}

// New creates an Interpreter with a fresh global environment.
func New() *Interpreter {
	return &Interpreter{engine: engine.New()}
}

// Define binds name to v in the global environment. The name is read
// the way the reader reads an unqualified symbol.
func (i *Interpreter) Define(name string, v Value) {
	i.engine.Global().Define(sym.Intern(name), v)
}

// Eval evaluates every form in text and returns the printed value of the
// last. Text with no forms evaluates to NIL.
func (i *Interpreter) Eval(text string) (string, error) {
	v, err := i.EvalValue(text)
	if err != nil {
		return "", err
	}

	return Print(v), nil
}

// EvalValue evaluates every form in text and returns the value of the last.
// Evaluation stops at the first error.
func (i *Interpreter) EvalValue(text string) (Value, error) {
	cs, err := reader.Read("eval", text)
	if err != nil {
		return nil, err
	}

	v := pair.Null

	for _, c := range cs {
		v, err = i.engine.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Print returns the printed representation of v.
func Print(v Value) string {
	return literal.String(v)
}
