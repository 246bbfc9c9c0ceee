// Released under an MIT license. See LICENSE.

// Package pair provides corelisp's cons cell type.
package pair

import (
	"strings"

	"github.com/corelisp/corelisp/internal/common"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also logical false.
	Null cell.I
)

// T (pair) is a cons cell. A pair is never modified after it is created.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return cell.I(p) == c
	}

	q, ok := c.(*pair)
	if !ok {
		return false
	}

	for {
		if !p.car.Equal(q.car) {
			return false
		}

		pn, pok := p.cdr.(*pair)
		qn, qok := q.cdr.(*pair)

		if !pok || !qok || pn == Null || qn == Null {
			return p.cdr.Equal(q.cdr)
		}

		p, q = pn, qn
	}
}

// Literal returns the printed representation of the pair p.
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	if prefix, ok := abbreviation(p.car); ok {
		if rest, ok := p.cdr.(*pair); ok && rest != Null && rest.cdr == Null {
			return prefix + literal.String(rest.car)
		}
	}

	var b strings.Builder

	b.WriteString("(")
	b.WriteString(literal.String(p.car))

	tail := p.cdr
	for tail != Null {
		next, ok := tail.(*pair)
		if !ok {
			b.WriteString(" . ")
			b.WriteString(literal.String(tail))

			break
		}

		b.WriteString(" ")
		b.WriteString(literal.String(next.car))

		tail = next.cdr
	}

	b.WriteString(")")

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "null"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// The car of Null is Null. For any other non-pair, ok is false.
func Car(c cell.I) (v cell.I, ok bool) {
	p, ok := c.(*pair)
	if !ok {
		return nil, false
	}

	return p.car, true
}

// Cdr returns the cdr/tail/rest member of the pair c.
// The cdr of Null is Null. For any other non-pair, ok is false.
func Cdr(c cell.I) (v cell.I, ok bool) {
	p, ok := c.(*pair)
	if !ok {
		return nil, false
	}

	return p.cdr, true
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a non-empty pair.
func Is(c cell.I) bool {
	p, ok := c.(*pair)

	return ok && p != Null
}

// Split returns the car and cdr of c if c is a non-empty pair.
func Split(c cell.I) (car, cdr cell.I, ok bool) {
	p, ok := c.(*pair)
	if !ok || p == Null {
		return nil, nil, false
	}

	return p.car, p.cdr, true
}

// Reader syntax for one-element QUOTE, QUASIQUOTE, UNQUOTE and
// UNQUOTE-SPLICING forms.
//
//nolint:gochecknoglobals
var shorthand = map[*sym.T]string{
	sym.Quote:           "'",
	sym.Quasiquote:      "`",
	sym.Unquote:         ",",
	sym.UnquoteSplicing: ",@",
}

func abbreviation(c cell.I) (string, bool) {
	s, ok := sym.To(c)
	if !ok {
		return "", false
	}

	prefix, ok := shorthand[s]

	return prefix, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
