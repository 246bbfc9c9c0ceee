// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/create"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/validate"
)

func car(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	v, _, ok := pair.Split(first(args))
	if !ok {
		return nil, condition.Type("cons", first(args))
	}

	return v, nil
}

func cdr(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	_, v, ok := pair.Split(first(args))
	if !ok {
		return nil, condition.Type("cons", first(args))
	}

	return v, nil
}

func cons(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	return pair.Cons(args[0], args[1]), nil
}

func isAtom(args []cell.I) (cell.I, error) {
	return predicate(args, func(c cell.I) bool {
		return !pair.Is(c)
	})
}

func isCons(args []cell.I) (cell.I, error) {
	return predicate(args, pair.Is)
}

func isList(args []cell.I) (cell.I, error) {
	return predicate(args, func(c cell.I) bool {
		return c == pair.Null || pair.Is(c)
	})
}

func isNull(args []cell.I) (cell.I, error) {
	return predicate(args, func(c cell.I) bool {
		return c == pair.Null
	})
}

// predicate applies test to the single argument in args.
func predicate(args []cell.I, test func(cell.I) bool) (cell.I, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	return create.Bool(test(first(args))), nil
}
