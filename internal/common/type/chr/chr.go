// Released under an MIT license. See LICENSE.

// Package chr provides corelisp's character type.
package chr

import (
	"strings"

	"github.com/corelisp/corelisp/internal/common"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
)

const name = "character"

// T (chr) wraps a single rune.
type T rune

type chr = T

//nolint:gochecknoglobals
var (
	names = map[rune]string{
		' ':    "Space",
		'\n':   "Newline",
		'\t':   "Tab",
		'\r':   "Return",
		'\b':   "Backspace",
		'\f':   "Page",
		0x7f:   "Rubout",
		0x0000: "Nul",
	}
	runes = map[string]rune{}
)

// New creates a new chr cell.
func New(r rune) cell.I {
	c := chr(r)

	return &c
}

// Named returns the chr for a character name such as "Space" or "a".
func Named(s string) (cell.I, bool) {
	rs := []rune(s)
	if len(rs) == 1 {
		return New(rs[0]), true
	}

	r, ok := runes[strings.ToUpper(s)]
	if !ok {
		return nil, false
	}

	return New(r), true
}

// Equal returns true if c is a chr for the same rune.
func (c *chr) Equal(o cell.I) bool {
	d, ok := o.(*chr)

	return ok && *c == *d
}

// Literal returns the printed representation of the chr c.
func (c *chr) Literal() string {
	if n, ok := names[rune(*c)]; ok {
		return `#\` + n
	}

	return `#\` + string(rune(*c))
}

// Name returns the name of the chr type.
func (c *chr) Name() string {
	return name
}

// String returns the character as a one-rune string.
func (c *chr) String() string {
	return string(rune(*c))
}

// Rune returns the rune wrapped by c.
func (c *chr) Rune() rune {
	return rune(*c)
}

// To returns a chr if c is a chr.
func To(c cell.I) (*chr, bool) {
	t, ok := c.(*chr)

	return t, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t chr

	// The chr type is a cell.
	_ = cell.I(&t)

	// The chr type has a literal representation.
	_ = literal.I(&t)

	// The chr type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	for r, n := range names {
		runes[strings.ToUpper(n)] = r
	}

	runes["LINEFEED"] = '\n'
}
