// Released under an MIT license. See LICENSE.

// Package condition provides the errors signalled while evaluating corelisp.
//
// Every condition is a *T. Match a kind with errors.Is and one of the
// sentinel values below:
//
//	if errors.Is(err, condition.ErrArity) { ... }
package condition

import (
	"fmt"

	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
)

// Kind classifies a condition.
type Kind int

// Condition kinds.
const (
	Unknown Kind = iota
	UnboundSymbol
	NotAProcedure
	InvalidForm
	InvalidArgument
	TypeError
	Arity
	DivisionByZero
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case UnboundSymbol:
		return "unbound symbol"
	case NotAProcedure:
		return "not a procedure"
	case InvalidForm:
		return "invalid form"
	case InvalidArgument:
		return "invalid argument"
	case TypeError:
		return "type error"
	case Arity:
		return "arity error"
	case DivisionByZero:
		return "division by zero"
	}

	return "error"
}

// T (condition) is an error signalled by the evaluator.
type T struct {
	Kind    Kind
	Op      string // Operator that signalled the condition, if known.
	Message string

	// Argument counts. Only meaningful for Arity conditions.
	Expected int
	Actual   int
}

type condition = T

// Sentinels for use with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrUnboundSymbol   = &condition{Kind: UnboundSymbol}
	ErrNotAProcedure   = &condition{Kind: NotAProcedure}
	ErrInvalidForm     = &condition{Kind: InvalidForm}
	ErrInvalidArgument = &condition{Kind: InvalidArgument}
	ErrTypeError       = &condition{Kind: TypeError}
	ErrArity           = &condition{Kind: Arity}
	ErrDivisionByZero  = &condition{Kind: DivisionByZero}
)

// Error returns the text of the condition c.
func (c *condition) Error() string {
	s := c.Kind.String()
	if c.Op != "" {
		s += ": " + c.Op
	}

	if c.Message != "" {
		s += ": " + c.Message
	}

	return s
}

// Is reports whether target is a sentinel of the same kind as c.
func (c *condition) Is(target error) bool {
	t, ok := target.(*condition)

	return ok && t.Kind == c.Kind
}

// Within sets the operator for c, if it is not already set, and returns c.
func (c *condition) Within(op string) *condition {
	if c.Op == "" {
		c.Op = op
	}

	return c
}

// Attribute sets the operator for err, if err is a condition without one.
func Attribute(err error, op string) error {
	if c, ok := err.(*condition); ok { //nolint:errorlint
		return c.Within(op)
	}

	return err
}

// Argument creates an invalid-argument condition.
func Argument(format string, args ...interface{}) *condition {
	return &condition{Kind: InvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// ArgumentCount creates an arity condition. The description is the
// expected count in words, for example "at least 1 argument".
func ArgumentCount(description string, expected, actual int) *condition {
	return &condition{
		Kind:     Arity,
		Message:  fmt.Sprintf("expected %s, passed %d", description, actual),
		Expected: expected,
		Actual:   actual,
	}
}

// DivideByZero creates a division-by-zero condition.
func DivideByZero() *condition {
	return &condition{Kind: DivisionByZero, Message: "exact division by zero"}
}

// Form creates an invalid-form condition.
func Form(format string, args ...interface{}) *condition {
	return &condition{Kind: InvalidForm, Message: fmt.Sprintf(format, args...)}
}

// NotProcedure creates a not-a-procedure condition for the value c.
func NotProcedure(c cell.I) *condition {
	return &condition{Kind: NotAProcedure, Message: literal.String(c)}
}

// Type creates a type error naming the expected type and the offending value.
func Type(expected string, got cell.I) *condition {
	return &condition{
		Kind:    TypeError,
		Message: "expected " + expected + ", got " + literal.String(got),
	}
}

// Unbound creates an unbound-symbol condition for the symbol named s.
func Unbound(s string) *condition {
	return &condition{Kind: UnboundSymbol, Message: s}
}
