// Released under an MIT license. See LICENSE.

// Package eval provides corelisp's evaluator.
//
// Evaluate is an ordinary recursive function. Recursion depth follows
// expression nesting depth and there is no tail-call elimination.
package eval

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/interface/procedure"
	"github.com/corelisp/corelisp/internal/common/type/env"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

// Evaluate returns the value of c in the env e.
func Evaluate(c cell.I, e *env.T) (cell.I, error) {
	switch t := c.(type) {
	case *sym.T:
		if t.IsKeyword() {
			return t, nil
		}

		return e.Lookup(t)
	case *pair.T:
		head, args, ok := pair.Split(t)
		if !ok {
			return t, nil
		}

		if f := special(head); f != application {
			return dispatch(f, args, e)
		}

		return combination(head, args, e)
	}

	return c, nil
}

// Apply applies the procedure p to args.
func Apply(p cell.I, args []cell.I) (cell.I, error) {
	f, ok := p.(procedure.I)
	if !ok {
		return nil, condition.NotProcedure(p)
	}

	return f.Apply(args)
}

func combination(head, args cell.I, e *env.T) (cell.I, error) {
	p, err := Evaluate(head, e)
	if err != nil {
		return nil, err
	}

	if !procedure.Is(p) {
		return nil, condition.NotProcedure(p)
	}

	operands, ok := list.Elements(args)
	if !ok {
		return nil, condition.Form("improper argument list %s", literal.String(args))
	}

	values, err := each(operands, e)
	if err != nil {
		return nil, err
	}

	return Apply(p, values)
}

// each evaluates every element of cs, left to right.
func each(cs []cell.I, e *env.T) ([]cell.I, error) {
	values := make([]cell.I, len(cs))

	for i, c := range cs {
		v, err := Evaluate(c, e)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	return values, nil
}

// progn evaluates every element of body and returns the last value.
// An empty body returns Null.
func progn(body []cell.I, e *env.T) (cell.I, error) {
	v := pair.Null

	for _, c := range body {
		var err error

		v, err = Evaluate(c, e)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}
