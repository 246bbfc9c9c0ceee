// Released under an MIT license. See LICENSE.

// Package procedure defines the interface shared by builtins and closures.
package procedure

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
)

// I (procedure) is anything that can be applied to a sequence of
// already-evaluated arguments.
type I interface {
	cell.I

	Apply(args []cell.I) (cell.I, error)
}

type procedure = I

// Is returns true if c is a procedure.
func Is(c cell.I) bool {
	_, ok := c.(procedure)

	return ok
}
