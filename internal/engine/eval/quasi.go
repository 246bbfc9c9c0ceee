// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/type/env"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

// Expand rewrites the quasiquoted template c. Level is the quasiquote
// nesting depth and is 1 for the outermost backquote. Only commas at
// level 1 are evaluated. Deeper commas are kept, with their operands
// expanded one level shallower.
func Expand(c cell.I, e *env.T, level int) (cell.I, error) {
	head, operand, ok, err := marker(c)
	if err != nil {
		return nil, err
	}

	if ok {
		switch {
		case head == sym.Quasiquote:
			return rewrap(head, operand, e, level+1)
		case level > 1:
			return rewrap(head, operand, e, level-1)
		case head == sym.Unquote:
			return Evaluate(operand, e)
		}

		return nil, condition.Form(",@%s is not inside a list", literal.String(operand)).
			Within(formUnquoteSplicing.String())
	}

	if !pair.Is(c) {
		return c, nil
	}

	return build(c, e, level)
}

// build expands each element of the template list c. At level 1 an
// element of the form (UNQUOTE-SPLICING x) is replaced by the elements
// of the value of x, which must be a proper list.
func build(c cell.I, e *env.T, level int) (cell.I, error) {
	var elements []cell.I

	tail := pair.Null

	for c != pair.Null {
		// A dotted tail such as `(a . ,b) reads as (a UNQUOTE b).
		if _, _, ok, _ := marker(c); ok {
			v, err := Expand(c, e, level)
			if err != nil {
				return nil, err
			}

			tail = v

			break
		}

		car, cdr, ok := pair.Split(c)
		if !ok {
			tail = c

			break
		}

		if level == 1 {
			head, operand, ok, err := marker(car)
			if err != nil {
				return nil, err
			}

			if ok && head == sym.UnquoteSplicing {
				v, err := Evaluate(operand, e)
				if err != nil {
					return nil, err
				}

				spliced, ok := list.Elements(v)
				if !ok {
					return nil, condition.Type("list", v).Within(formUnquoteSplicing.String())
				}

				elements = append(elements, spliced...)
				c = cdr

				continue
			}
		}

		v, err := Expand(car, e, level)
		if err != nil {
			return nil, err
		}

		elements = append(elements, v)
		c = cdr
	}

	return list.Dotted(tail, elements...), nil
}

// marker returns the canonical head and the operand of c if c is a
// QUASIQUOTE, UNQUOTE, or UNQUOTE-SPLICING form. Heads match the way
// special form names do. These forms take exactly one operand.
func marker(c cell.I) (head *sym.T, operand cell.I, ok bool, err error) {
	car, cdr, ok := pair.Split(c)
	if !ok {
		return nil, nil, false, nil
	}

	switch special(car) {
	case formQuasiquote:
		head = sym.Quasiquote
	case formUnquote:
		head = sym.Unquote
	case formUnquoteSplicing:
		head = sym.UnquoteSplicing
	default:
		return nil, nil, false, nil
	}

	operands, ok := list.Elements(cdr)
	if !ok || len(operands) != 1 {
		return nil, nil, false, condition.Form("expected 1 operand in %s", literal.String(c)).
			Within(head.String())
	}

	return head, operands[0], true, nil
}

func rewrap(head *sym.T, operand cell.I, e *env.T, level int) (cell.I, error) {
	v, err := Expand(operand, e, level)
	if err != nil {
		return nil, err
	}

	return list.New(head, v), nil
}
