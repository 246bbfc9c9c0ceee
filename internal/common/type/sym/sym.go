// Released under an MIT license. See LICENSE.

// Package sym provides corelisp's symbol cell type.
package sym

import (
	"strings"
	"sync"

	"github.com/corelisp/corelisp/internal/common"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) is a symbol name qualified by its package.
// Two syms are the same binding target iff both fields match.
type T struct {
	name string
	pkg  string
}

type sym = T

// Canonical symbols.
//
//nolint:gochecknoglobals
var (
	True = New("T", common.CommonLisp)

	Quote           = New("QUOTE", common.CommonLisp)
	Quasiquote      = New("QUASIQUOTE", common.CommonLisp)
	Unquote         = New("UNQUOTE", common.CommonLisp)
	UnquoteSplicing = New("UNQUOTE-SPLICING", common.CommonLisp)
	Function        = New("FUNCTION", common.CommonLisp)
)

// New returns the sym named v in the package pkg.
func New(v, pkg string) *sym {
	k := sym{name: v, pkg: pkg}

	cachel.RLock()
	p, ok := cache[k]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[k]; ok {
		return p
	}

	p = &k
	cache[k] = p

	return p
}

// Intern returns the COMMON-LISP sym for v, upper-cased.
func Intern(v string) *sym {
	return New(strings.ToUpper(v), common.CommonLisp)
}

// Keyword returns the KEYWORD sym for v, upper-cased.
func Keyword(v string) *sym {
	return New(strings.ToUpper(v), common.Keyword)
}

// Equal returns true if c is a sym with the same name and package.
func (s *sym) Equal(c cell.I) bool {
	t, ok := c.(*sym)

	return ok && s.name == t.name && s.pkg == t.pkg
}

// Literal returns the printed representation of the sym s.
func (s *sym) Literal() string {
	if s.IsKeyword() {
		return ":" + s.name
	}

	return s.name
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the name of the sym s.
func (s *sym) String() string {
	return s.name
}

// Methods specific to sym.

// IsKeyword returns true if s belongs to the KEYWORD package.
func (s *sym) IsKeyword() bool {
	return s.pkg == common.Keyword
}

// Package returns the package name for the sym s.
func (s *sym) Package() string {
	return s.pkg
}

// Functions specific to sym.

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it returns false.
func To(c cell.I) (*sym, bool) {
	s, ok := c.(*sym)

	return s, ok
}

//nolint:gochecknoglobals
var (
	cache  = map[sym]*sym{}
	cachel = &sync.RWMutex{}
)

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
