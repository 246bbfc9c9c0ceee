// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/integer"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/validate"
)

func appendLists(args []cell.I) (cell.I, error) {
	for _, l := range args[:max0(len(args)-1)] {
		if _, ok := list.Length(l); !ok {
			return nil, condition.Type("list", l)
		}
	}

	joined, _ := list.Join(args...)

	return joined, nil
}

func length(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	n, ok := list.Length(first(args))
	if !ok {
		return nil, condition.Type("list", first(args))
	}

	return num.Int(n), nil
}

func makeList(args []cell.I) (cell.I, error) {
	return list.New(args...), nil
}

func nth(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 2); err != nil {
		return nil, err
	}

	i, err := integer.Value(args[0])
	if err != nil {
		return nil, err
	}

	if i < 0 {
		return nil, condition.Argument("index %d is negative", i)
	}

	t, ok := list.Tail(args[1], i)
	if !ok {
		return nil, condition.Type("list", args[1])
	}

	if t == pair.Null {
		return pair.Null, nil
	}

	car, _, ok := pair.Split(t)
	if !ok {
		return nil, condition.Type("list", args[1])
	}

	return car, nil
}

func reverse(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	r, ok := list.Reverse(first(args))
	if !ok {
		return nil, condition.Type("list", first(args))
	}

	return r, nil
}

func max0(n int) int {
	if n < 0 {
		return 0
	}

	return n
}
