// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for corelisp.
//
// The parser consumes tokens from the end of its token slice. Tokens
// produced by the lexer in source order must be passed through Reverse
// before they are handed to New.
package parser

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/struct/loc"
	"github.com/corelisp/corelisp/internal/common/struct/token"
	"github.com/corelisp/corelisp/internal/common/type/chr"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/str"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

// ErrIncomplete is wrapped by errors for input that ends mid-expression.
var ErrIncomplete = errors.New("incomplete expression")

// Error is a syntax error at a source location.
type Error struct {
	Source  loc.T
	Message string

	err error
}

// Error returns the location and text of the syntax error.
func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Message
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// T holds the state of the parser.
type T struct {
	tokens []*token.T // Remaining tokens, last token first.
	end    loc.T      // Where input ran out.
}

// New creates a new parser for tokens, which must be in reverse order.
func New(reversed []*token.T) *T {
	p := &T{tokens: reversed}

	if len(reversed) > 0 {
		p.end = reversed[0].Source()
	}

	return p
}

// Reverse returns a reversed copy of tokens.
func Reverse(tokens []*token.T) []*token.T {
	reversed := make([]*token.T, len(tokens))

	for i, t := range tokens {
		reversed[len(tokens)-1-i] = t
	}

	return reversed
}

// More returns true if there are tokens left to parse.
func (p *T) More() bool {
	return len(p.tokens) > 0
}

// Parse consumes the tokens for one expression and returns its value.
func (p *T) Parse() (cell.I, error) {
	t := p.pop()
	if t == nil {
		return nil, p.incomplete(p.end)
	}

	switch t.Class() {
	case '(':
		return p.list(t)
	case '\'':
		return p.wrap(sym.Quote)
	case '`':
		return p.wrap(sym.Quasiquote)
	case ',':
		return p.wrap(sym.Unquote)
	case token.CommaAt:
		return p.wrap(sym.UnquoteSplicing)
	case token.Function:
		return p.wrap(sym.Function)
	case token.Atom:
		return atom(t)
	case token.Character:
		c, ok := chr.Named(t.Value())
		if !ok {
			return nil, fail(t, "unknown character name '"+t.Value()+"'")
		}

		return c, nil
	case token.String:
		v := t.Value()

		s, err := adapted.ActualBytes(v[1 : len(v)-1])
		if err != nil {
			return nil, &Error{Source: t.Source(), Message: "invalid string " + v, err: err}
		}

		return str.New(s), nil
	case token.Unterminated:
		return nil, p.incomplete(t.Source())
	}

	return nil, fail(t, "unexpected '"+t.Value()+"'")
}

// Parse returns every expression in tokens, which must be in source order.
func Parse(tokens []*token.T) ([]cell.I, error) {
	p := New(Reverse(tokens))

	var cs []cell.I

	for p.More() {
		c, err := p.Parse()
		if err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}

	return cs, nil
}

func (p *T) incomplete(source loc.T) error {
	return &Error{Source: source, Message: "unexpected end of input", err: ErrIncomplete}
}

func (p *T) list(open *token.T) (cell.I, error) {
	var elements []cell.I

	for {
		t := p.peek()

		switch {
		case t == nil:
			return nil, p.incomplete(open.Source())
		case t.Is(')'):
			p.pop()

			return list.New(elements...), nil
		case t.Is(token.Dot):
			if len(elements) == 0 {
				return nil, fail(t, "nothing before '.'")
			}

			p.pop()

			tail, err := p.Parse()
			if err != nil {
				return nil, err
			}

			closing := p.pop()
			if closing == nil {
				return nil, p.incomplete(open.Source())
			}

			if !closing.Is(')') {
				return nil, fail(closing, "expected ')' after dotted pair, got '"+closing.Value()+"'")
			}

			return list.Dotted(tail, elements...), nil
		}

		e, err := p.Parse()
		if err != nil {
			return nil, err
		}

		elements = append(elements, e)
	}
}

func (p *T) peek() *token.T {
	if len(p.tokens) == 0 {
		return nil
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *T) pop() *token.T {
	t := p.peek()
	if t != nil {
		p.tokens = p.tokens[:len(p.tokens)-1]
	}

	return t
}

func (p *T) wrap(s *sym.T) (cell.I, error) {
	c, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return list.New(s, c), nil
}

func atom(t *token.T) (cell.I, error) {
	v := t.Value()

	n, ok, err := num.Parse(v)
	if err != nil {
		return nil, &Error{Source: t.Source(), Message: "invalid number " + v, err: err}
	}

	if ok {
		return n, nil
	}

	switch u := strings.ToUpper(v); {
	case u == "NIL":
		return pair.Null, nil
	case u == "T":
		return sym.True, nil
	case strings.HasPrefix(u, ":"):
		if len(u) == 1 {
			return nil, fail(t, "missing keyword name")
		}

		return sym.Keyword(u[1:]), nil
	}

	return sym.Intern(v), nil
}

func fail(t *token.T, msg string) error {
	return &Error{Source: t.Source(), Message: msg}
}
