// Released under an MIT license. See LICENSE.

// Package builtin provides corelisp's native procedure type.
package builtin

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/interface/procedure"
)

const name = "function"

// Function is the Go signature of a builtin. Arguments arrive evaluated.
type Function func(args []cell.I) (cell.I, error)

// T (builtin) is a named native procedure.
type T struct {
	fn    Function
	label string
}

type builtin = T

// New creates a builtin called label that calls fn.
func New(label string, fn Function) *builtin {
	return &builtin{fn: fn, label: label}
}

// Apply calls the builtin with args. Conditions raised by the builtin
// are attributed to it.
func (b *builtin) Apply(args []cell.I) (cell.I, error) {
	v, err := b.fn(args)
	if err != nil {
		return nil, condition.Attribute(err, b.label)
	}

	return v, nil
}

// Equal is always false. Procedures have no meaningful equality.
func (b *builtin) Equal(_ cell.I) bool {
	return false
}

// Literal returns the opaque printed representation of the builtin b.
func (b *builtin) Literal() string {
	return "#<FUNCTION " + b.label + ">"
}

// Name returns the name of the builtin type.
func (b *builtin) Name() string {
	return name
}

// Label returns the name the builtin was created with.
func (b *builtin) Label() string {
	return b.label
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a procedure.
	_ = procedure.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)
}
