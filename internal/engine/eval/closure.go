// Released under an MIT license. See LICENSE.

package eval

import (
	"strings"

	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/interface/procedure"
	"github.com/corelisp/corelisp/internal/common/type/env"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/str"
	"github.com/corelisp/corelisp/internal/common/type/sym"
	"github.com/corelisp/corelisp/internal/common/validate"
)

// Closure is a user-defined procedure. It captures the env where it was
// created. Each call binds its parameters in a fresh child of that env.
type Closure struct {
	Body   []cell.I
	Label  string
	Params []*sym.T
	Scope  *env.T

	doc *str.T
}

// Apply binds args to the closure's parameters, positionally, and
// evaluates its body.
func (c *Closure) Apply(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, len(c.Params)); err != nil {
		return nil, condition.Attribute(err, c.Label)
	}

	scope := env.New(c.Scope)
	for i, p := range c.Params {
		scope.Define(p, args[i])
	}

	return progn(c.Body, scope)
}

// Documentation returns the closure's docstring, if it has one.
func (c *Closure) Documentation() (string, bool) {
	if c.doc == nil {
		return "", false
	}

	return c.doc.String(), true
}

// Equal is always false. Procedures have no meaningful equality.
func (c *Closure) Equal(_ cell.I) bool {
	return false
}

// Literal returns the opaque printed representation of the closure c.
func (c *Closure) Literal() string {
	return "#<FUNCTION " + c.Label + ">"
}

// Name returns the name of the closure type.
func (c *Closure) Name() string {
	return "function"
}

func closure(f form, label string, params cell.I, body []cell.I, e *env.T) (*Closure, error) {
	elements, ok := list.Elements(params)
	if !ok {
		return nil, f.malformed("invalid parameter list %s", literal.String(params))
	}

	seen := map[*sym.T]bool{}
	names := make([]*sym.T, len(elements))

	for i, p := range elements {
		s, err := f.variable(p)
		if err != nil {
			return nil, err
		}

		if strings.HasPrefix(s.String(), "&") {
			return nil, f.malformed("lambda list keyword %s is not supported", s.Literal())
		}

		if seen[s] {
			return nil, f.malformed("parameter %s appears more than once", s.Literal())
		}

		seen[s] = true
		names[i] = s
	}

	c := &Closure{
		Body:   body,
		Label:  label,
		Params: names,
		Scope:  e,
	}

	if len(body) > 1 {
		if doc, ok := body[0].(*str.T); ok {
			c.doc = doc
			c.Body = body[1:]
		}
	}

	return c, nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t Closure

	// The closure type is a procedure.
	_ = procedure.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
