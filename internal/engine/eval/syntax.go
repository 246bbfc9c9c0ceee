// Released under an MIT license. See LICENSE.

package eval

import (
	"strings"

	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/interface/procedure"
	"github.com/corelisp/corelisp/internal/common/type/create"
	"github.com/corelisp/corelisp/internal/common/type/env"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

// form is a special form. The set of special forms is closed.
type form int

const (
	application form = iota // Not a special form.
	formAnd
	formApply
	formCond
	formDefparameter
	formDefun
	formDefvar
	formEval
	formFuncall
	formFunction
	formIf
	formLambda
	formLet
	formLetStar
	formNot
	formOr
	formProgn
	formQuasiquote
	formQuote
	formSetq
	formUnquote
	formUnquoteSplicing
	forms
)

//nolint:gochecknoglobals
var (
	labels = [forms]string{
		formAnd:             "AND",
		formApply:           "APPLY",
		formCond:            "COND",
		formDefparameter:    "DEFPARAMETER",
		formDefun:           "DEFUN",
		formDefvar:          "DEFVAR",
		formEval:            "EVAL",
		formFuncall:         "FUNCALL",
		formFunction:        "FUNCTION",
		formIf:              "IF",
		formLambda:          "LAMBDA",
		formLet:             "LET",
		formLetStar:         "LET*",
		formNot:             "NOT",
		formOr:              "OR",
		formProgn:           "PROGN",
		formQuasiquote:      "QUASIQUOTE",
		formQuote:           "QUOTE",
		formSetq:            "SETQ",
		formUnquote:         "UNQUOTE",
		formUnquoteSplicing: "UNQUOTE-SPLICING",
	}
	named = map[string]form{}
)

func (f form) String() string {
	return labels[f]
}

// special returns the special form named by head, if any. Names match
// without regard to case. Keywords never name special forms.
func special(head cell.I) form {
	s, ok := sym.To(head)
	if !ok || s.IsKeyword() {
		return application
	}

	return named[strings.ToUpper(s.String())]
}

//nolint:cyclop,gocyclo
func dispatch(f form, args cell.I, e *env.T) (cell.I, error) {
	operands, ok := list.Elements(args)
	if !ok {
		return nil, f.malformed("improper argument list %s", literal.String(args))
	}

	switch f {
	case formAnd:
		return and(operands, e)
	case formApply:
		return apply(f, operands, e)
	case formCond:
		return cond(f, operands, e)
	case formDefparameter:
		return defparameter(f, operands, e)
	case formDefun:
		return defun(f, operands, e)
	case formDefvar:
		return defvar(f, operands, e)
	case formEval:
		return evaluate(f, operands, e)
	case formFuncall:
		return funcall(f, operands, e)
	case formFunction:
		return function(f, operands, e)
	case formIf:
		return conditional(f, operands, e)
	case formLambda:
		return lambda(f, operands, e)
	case formLet:
		return let(f, operands, e)
	case formLetStar:
		return letStar(f, operands, e)
	case formNot:
		return not(f, operands, e)
	case formOr:
		return or(operands, e)
	case formProgn:
		return progn(operands, e)
	case formQuasiquote:
		return quasiquote(f, operands, e)
	case formQuote:
		return quote(f, operands)
	case formSetq:
		return setq(f, operands, e)
	case formUnquote, formUnquoteSplicing:
		return nil, f.malformed("comma is not inside a backquote")
	case application, forms:
	}

	return nil, f.malformed("unknown special form")
}

func (f form) arguments(operands []cell.I, min, max int) error {
	n := len(operands)
	if n >= min && (max < 0 || n <= max) {
		return nil
	}

	switch {
	case min == max:
		return f.malformed("expected %d operands, got %d", min, n)
	case n < min:
		return f.malformed("expected at least %d operands, got %d", min, n)
	}

	return f.malformed("expected at most %d operands, got %d", max, n)
}

func (f form) malformed(format string, args ...interface{}) error {
	return condition.Form(format, args...).Within(f.String())
}

func (f form) variable(c cell.I) (*sym.T, error) {
	s, ok := sym.Variable(c)
	if !ok {
		return nil, f.malformed("%s is not a variable name", literal.String(c))
	}

	return s, nil
}

// Special forms.

func and(operands []cell.I, e *env.T) (cell.I, error) {
	v := cell.I(sym.True)

	for _, c := range operands {
		var err error

		v, err = Evaluate(c, e)
		if err != nil {
			return nil, err
		}

		if !create.True(v) {
			return pair.Null, nil
		}
	}

	return v, nil
}

func apply(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 2, -1); err != nil {
		return nil, err
	}

	values, err := each(operands, e)
	if err != nil {
		return nil, err
	}

	last := values[len(values)-1]

	spread, ok := list.Elements(last)
	if !ok {
		return nil, condition.Type("list", last).Within(f.String())
	}

	args := append(values[1:len(values)-1:len(values)-1], spread...)

	return Apply(values[0], args)
}

func cond(f form, operands []cell.I, e *env.T) (cell.I, error) {
	for _, clause := range operands {
		body, ok := list.Elements(clause)
		if !ok || len(body) == 0 {
			return nil, f.malformed("invalid clause %s", literal.String(clause))
		}

		test, err := Evaluate(body[0], e)
		if err != nil {
			return nil, err
		}

		if !create.True(test) {
			continue
		}

		if len(body) == 1 {
			return test, nil
		}

		return progn(body[1:], e)
	}

	return pair.Null, nil
}

func conditional(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 2, 3); err != nil {
		return nil, err
	}

	test, err := Evaluate(operands[0], e)
	if err != nil {
		return nil, err
	}

	if create.True(test) {
		return Evaluate(operands[1], e)
	}

	if len(operands) == 3 {
		return Evaluate(operands[2], e)
	}

	return pair.Null, nil
}

func defparameter(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 2, 3); err != nil {
		return nil, err
	}

	s, err := f.variable(operands[0])
	if err != nil {
		return nil, err
	}

	v, err := Evaluate(operands[1], e)
	if err != nil {
		return nil, err
	}

	e.Define(s, v)

	return s, nil
}

func defun(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 2, -1); err != nil {
		return nil, err
	}

	s, err := f.variable(operands[0])
	if err != nil {
		return nil, err
	}

	c, err := closure(f, s.Literal(), operands[1], operands[2:], e)
	if err != nil {
		return nil, err
	}

	e.Define(s, c)

	return c, nil
}

// defvar leaves an existing binding in the current scope untouched.
func defvar(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, 3); err != nil {
		return nil, err
	}

	s, err := f.variable(operands[0])
	if err != nil {
		return nil, err
	}

	if len(operands) == 1 || e.Bound(s) {
		return s, nil
	}

	v, err := Evaluate(operands[1], e)
	if err != nil {
		return nil, err
	}

	e.Define(s, v)

	return s, nil
}

func evaluate(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, 1); err != nil {
		return nil, err
	}

	v, err := Evaluate(operands[0], e)
	if err != nil {
		return nil, err
	}

	return Evaluate(v, e)
}

func funcall(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, -1); err != nil {
		return nil, err
	}

	values, err := each(operands, e)
	if err != nil {
		return nil, err
	}

	return Apply(values[0], values[1:])
}

func function(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, 1); err != nil {
		return nil, err
	}

	switch c := operands[0]; {
	case sym.Is(c):
		s, _ := sym.To(c)

		v, err := e.Lookup(s)
		if err != nil {
			return nil, err
		}

		if !procedure.Is(v) {
			return nil, condition.NotProcedure(v).Within(f.String())
		}

		return v, nil
	case pair.Is(c):
		head, _, _ := pair.Split(c)
		if special(head) == formLambda {
			return Evaluate(c, e)
		}
	}

	return nil, f.malformed("%s is not a function name", literal.String(operands[0]))
}

func lambda(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, -1); err != nil {
		return nil, err
	}

	return closure(f, f.String(), operands[0], operands[1:], e)
}

func let(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, -1); err != nil {
		return nil, err
	}

	bindings, err := f.bindings(operands[0])
	if err != nil {
		return nil, err
	}

	values := make([]cell.I, len(bindings))

	for i, b := range bindings {
		values[i], err = b.value(e)
		if err != nil {
			return nil, err
		}
	}

	scope := env.New(e)
	for i, b := range bindings {
		scope.Define(b.name, values[i])
	}

	return progn(operands[1:], scope)
}

func letStar(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, -1); err != nil {
		return nil, err
	}

	bindings, err := f.bindings(operands[0])
	if err != nil {
		return nil, err
	}

	scope := env.New(e)

	for _, b := range bindings {
		v, err := b.value(scope)
		if err != nil {
			return nil, err
		}

		scope.Define(b.name, v)
	}

	return progn(operands[1:], scope)
}

func not(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, 1); err != nil {
		return nil, err
	}

	v, err := Evaluate(operands[0], e)
	if err != nil {
		return nil, err
	}

	return create.Bool(!create.True(v)), nil
}

func or(operands []cell.I, e *env.T) (cell.I, error) {
	for _, c := range operands {
		v, err := Evaluate(c, e)
		if err != nil {
			return nil, err
		}

		if create.True(v) {
			return v, nil
		}
	}

	return pair.Null, nil
}

func quasiquote(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if err := f.arguments(operands, 1, 1); err != nil {
		return nil, err
	}

	return Expand(operands[0], e, 1)
}

func quote(f form, operands []cell.I) (cell.I, error) {
	if err := f.arguments(operands, 1, 1); err != nil {
		return nil, err
	}

	return operands[0], nil
}

func setq(f form, operands []cell.I, e *env.T) (cell.I, error) {
	if len(operands)%2 != 0 {
		return nil, f.malformed("odd number of operands")
	}

	v := pair.Null

	for i := 0; i < len(operands); i += 2 {
		s, err := f.variable(operands[i])
		if err != nil {
			return nil, err
		}

		v, err = Evaluate(operands[i+1], e)
		if err != nil {
			return nil, err
		}

		if err = e.Assign(s, v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Bindings for LET and LET*.

type binding struct {
	name *sym.T
	init cell.I // Nil when the binding has no initializer.
}

func (b binding) value(e *env.T) (cell.I, error) {
	if b.init == nil {
		return pair.Null, nil
	}

	return Evaluate(b.init, e)
}

// bindings parses a binding list. Each binding is a variable name,
// (name), or (name init).
func (f form) bindings(c cell.I) ([]binding, error) {
	elements, ok := list.Elements(c)
	if !ok {
		return nil, f.malformed("invalid binding list %s", literal.String(c))
	}

	bindings := make([]binding, len(elements))

	for i, b := range elements {
		if s, ok := sym.Variable(b); ok {
			bindings[i] = binding{name: s}

			continue
		}

		parts, ok := list.Elements(b)
		if !ok || len(parts) == 0 || len(parts) > 2 {
			return nil, f.malformed("invalid binding %s", literal.String(b))
		}

		s, err := f.variable(parts[0])
		if err != nil {
			return nil, err
		}

		bindings[i] = binding{name: s}
		if len(parts) == 2 {
			bindings[i].init = parts[1]
		}
	}

	return bindings, nil
}

func init() { //nolint:gochecknoinits
	for f := formAnd; f < forms; f++ {
		named[labels[f]] = f
	}
}
