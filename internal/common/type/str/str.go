// Released under an MIT license. See LICENSE.

// Package str provides corelisp's string type.
package str

import (
	"strconv"

	"github.com/corelisp/corelisp/internal/common"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	t, ok := c.(*str)

	return ok && *s == *t
}

// Literal returns the printed representation of the str s.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
