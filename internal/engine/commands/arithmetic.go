// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/validate"
)

func abs(args []cell.I) (cell.I, error) {
	v, err := fixedNumbers(args, 1)
	if err != nil {
		return nil, err
	}

	return num.Abs(v[0]), nil
}

func add(args []cell.I) (cell.I, error) {
	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	sum := num.Int(0)
	for _, n := range v {
		sum = num.Add(sum, n)
	}

	return sum, nil
}

func dec(args []cell.I) (cell.I, error) {
	v, err := fixedNumbers(args, 1)
	if err != nil {
		return nil, err
	}

	return num.Sub(v[0], num.Int(1)), nil
}

func div(args []cell.I) (cell.I, error) {
	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	switch len(v) {
	case 0:
		return num.Int(1), nil
	case 1:
		return num.Div(num.Int(1), v[0])
	}

	quotient := v[0]
	for _, n := range v[1:] {
		quotient, err = num.Div(quotient, n)
		if err != nil {
			return nil, err
		}
	}

	return quotient, nil
}

func inc(args []cell.I) (cell.I, error) {
	v, err := fixedNumbers(args, 1)
	if err != nil {
		return nil, err
	}

	return num.Add(v[0], num.Int(1)), nil
}

func max(args []cell.I) (cell.I, error) {
	return extreme(args, 1)
}

func min(args []cell.I) (cell.I, error) {
	return extreme(args, -1)
}

func mod(args []cell.I) (cell.I, error) {
	v, err := fixedNumbers(args, 2)
	if err != nil {
		return nil, err
	}

	return num.Mod(v[0], v[1])
}

func mul(args []cell.I) (cell.I, error) {
	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	product := num.Int(1)
	for _, n := range v {
		product = num.Mul(product, n)
	}

	return product, nil
}

func rem(args []cell.I) (cell.I, error) {
	v, err := fixedNumbers(args, 2)
	if err != nil {
		return nil, err
	}

	return num.Rem(v[0], v[1])
}

func sub(args []cell.I) (cell.I, error) {
	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	switch len(v) {
	case 0:
		return num.Int(0), nil
	case 1:
		return num.Neg(v[0]), nil
	}

	difference := v[0]
	for _, n := range v[1:] {
		difference = num.Sub(difference, n)
	}

	return difference, nil
}

// extreme returns the argument that compares as sign against every other.
// If any argument is a float the result is a float.
func extreme(args []cell.I, sign int) (cell.I, error) {
	if err := validate.Variadic(args, 1, -1); err != nil {
		return nil, err
	}

	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	best := v[0]
	inexact := !best.Exact()

	for _, n := range v[1:] {
		if c, ok := num.Compare(n, best); ok && c == sign {
			best = n
		}

		inexact = inexact || !n.Exact()
	}

	if inexact {
		return num.Float(best.Float64()), nil
	}

	return best, nil
}

func fixedNumbers(args []cell.I, n int) ([]*num.T, error) {
	if err := validate.Fixed(args, n); err != nil {
		return nil, err
	}

	return numbers(args)
}

func number(c cell.I) (*num.T, error) {
	n, ok := num.To(c)
	if !ok {
		return nil, condition.Type("number", c)
	}

	return n, nil
}

func numbers(args []cell.I) ([]*num.T, error) {
	v := make([]*num.T, len(args))

	for i, c := range args {
		n, err := number(c)
		if err != nil {
			return nil, err
		}

		v[i] = n
	}

	return v, nil
}
