// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/corelisp/corelisp/internal/common/compare"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/create"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/type/sym"
	"github.com/corelisp/corelisp/internal/common/validate"
)

func eq(args []cell.I) (cell.I, error) {
	return equality(args, compare.Eq)
}

func eql(args []cell.I) (cell.I, error) {
	return equality(args, compare.Eql)
}

func equal(args []cell.I) (cell.I, error) {
	return equality(args, compare.Equal)
}

func ge(args []cell.I) (cell.I, error) {
	return chain(args, func(c int) bool { return c >= 0 })
}

func gt(args []cell.I) (cell.I, error) {
	return chain(args, func(c int) bool { return c > 0 })
}

func le(args []cell.I) (cell.I, error) {
	return chain(args, func(c int) bool { return c <= 0 })
}

func lt(args []cell.I) (cell.I, error) {
	return chain(args, func(c int) bool { return c < 0 })
}

func numEq(args []cell.I) (cell.I, error) {
	return chain(args, func(c int) bool { return c == 0 })
}

// chain compares each adjacent pair of arguments, left to right, and
// stops at the first pair that fails. Zero or one argument is true.
func chain(args []cell.I, holds func(int) bool) (cell.I, error) {
	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(v); i++ {
		c, ok := num.Compare(v[i-1], v[i])
		if !ok || !holds(c) {
			return create.Bool(false), nil
		}
	}

	return sym.True, nil
}

func equality(args []cell.I, same func(a, b cell.I) bool) (cell.I, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	return create.Bool(same(args[0], args[1])), nil
}
