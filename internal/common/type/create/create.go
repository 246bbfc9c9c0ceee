// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating corelisp values.
package create

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

// Bool returns the corelisp value corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return sym.True
	}

	return pair.Null
}

// True returns false only for the empty list. Every other value is true.
func True(c cell.I) bool {
	return c != pair.Null
}
