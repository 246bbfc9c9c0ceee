// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/create"
	"github.com/corelisp/corelisp/internal/common/type/num"
)

func denominator(args []cell.I) (cell.I, error) {
	r, err := rational(args)
	if err != nil {
		return nil, err
	}

	return num.BigInt(r.Denominator()), nil
}

func float(args []cell.I) (cell.I, error) {
	v, err := fixedNumbers(args, 1)
	if err != nil {
		return nil, err
	}

	return num.Float(v[0].Float64()), nil
}

func isFloat(args []cell.I) (cell.I, error) {
	return kind(args, num.Double)
}

func isInteger(args []cell.I) (cell.I, error) {
	return kind(args, num.Integer)
}

func isNumber(args []cell.I) (cell.I, error) {
	return predicate(args, num.Is)
}

func isRational(args []cell.I) (cell.I, error) {
	return predicate(args, func(c cell.I) bool {
		n, ok := num.To(c)

		return ok && n.Exact()
	})
}

func isZero(args []cell.I) (cell.I, error) {
	v, err := fixedNumbers(args, 1)
	if err != nil {
		return nil, err
	}

	return create.Bool(v[0].IsZero()), nil
}

func numerator(args []cell.I) (cell.I, error) {
	r, err := rational(args)
	if err != nil {
		return nil, err
	}

	return num.BigInt(r.Numerator()), nil
}

func kind(args []cell.I, k num.Kind) (cell.I, error) {
	return predicate(args, func(c cell.I) bool {
		n, ok := num.To(c)

		return ok && n.Kind() == k
	})
}

func rational(args []cell.I) (*num.T, error) {
	v, err := fixedNumbers(args, 1)
	if err != nil {
		return nil, err
	}

	if !v[0].Exact() {
		return nil, condition.Type("rational", v[0])
	}

	return v[0], nil
}
