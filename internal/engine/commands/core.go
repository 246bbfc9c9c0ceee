// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/procedure"
	"github.com/corelisp/corelisp/internal/common/type/chr"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/str"
	"github.com/corelisp/corelisp/internal/common/validate"
)

type documented interface {
	Documentation() (string, bool)
}

// documentation returns a procedure's docstring, or NIL if it has none.
func documentation(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	p := first(args)
	if !procedure.Is(p) {
		return nil, condition.Type("function", p)
	}

	if d, ok := p.(documented); ok {
		if s, ok := d.Documentation(); ok {
			return str.New(s), nil
		}
	}

	return pair.Null, nil
}

func isCharacter(args []cell.I) (cell.I, error) {
	return predicate(args, func(c cell.I) bool {
		_, ok := chr.To(c)

		return ok
	})
}

func isFunction(args []cell.I) (cell.I, error) {
	return predicate(args, procedure.Is)
}

func isString(args []cell.I) (cell.I, error) {
	return predicate(args, str.Is)
}
