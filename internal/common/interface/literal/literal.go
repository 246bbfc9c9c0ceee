// Released under an MIT license. See LICENSE.

// Package literal defines the interface for corelisp's printed representation.
package literal

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
)

// I (literal) is any type that has a printed representation.
type I interface {
	Literal() string
}

// String returns the printed representation for a cell.
// Cells without one print as an opaque #<name> placeholder.
func String(c cell.I) string {
	if c == nil {
		return "#<nil>"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
