// Released under an MIT license. See LICENSE.

// Package compare provides corelisp's three equality tiers.
//
//	Eq     identity: the same symbol, both empty, the same character or
//	       fixnum, or the very same object.
//	Eql    Eq, or numbers of the same kind and value.
//	Equal  Eql at the leaves, recursing through pairs. Strings compare
//	       by content.
//
// Procedures are never equal to anything, including themselves.
package compare

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/procedure"
	"github.com/corelisp/corelisp/internal/common/type/chr"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

// Eq returns true if a and b are the same object.
func Eq(a, b cell.I) bool {
	if procedure.Is(a) || procedure.Is(b) {
		return false
	}

	if a == b {
		return true
	}

	if sym.Is(a) {
		return a.Equal(b)
	}

	if c, ok := chr.To(a); ok {
		return c.Equal(b)
	}

	m, ok := num.To(a)
	if !ok {
		return false
	}

	n, ok := num.To(b)
	if !ok {
		return false
	}

	x, ok := m.Int64()
	if !ok {
		return false
	}

	y, ok := n.Int64()

	return ok && x == y
}

// Eql returns true if a and b are Eq or are numbers of the same kind
// with the same value.
func Eql(a, b cell.I) bool {
	if Eq(a, b) {
		return true
	}

	if num.Is(a) {
		return a.Equal(b)
	}

	return false
}

// Equal returns true if a and b are structurally equal.
func Equal(a, b cell.I) bool {
	if procedure.Is(a) || procedure.Is(b) {
		return false
	}

	return a.Equal(b)
}
