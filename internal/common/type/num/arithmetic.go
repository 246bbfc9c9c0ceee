// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"math/big"

	"github.com/corelisp/corelisp/internal/common/condition"
)

// Add returns a + b.
func Add(a, b *num) *num {
	if a.float || b.float {
		return Float(a.Float64() + b.Float64())
	}

	return &num{exact: new(big.Rat).Add(a.exact, b.exact)}
}

// Sub returns a - b.
func Sub(a, b *num) *num {
	if a.float || b.float {
		return Float(a.Float64() - b.Float64())
	}

	return &num{exact: new(big.Rat).Sub(a.exact, b.exact)}
}

// Mul returns a * b.
func Mul(a, b *num) *num {
	if a.float || b.float {
		return Float(a.Float64() * b.Float64())
	}

	return &num{exact: new(big.Rat).Mul(a.exact, b.exact)}
}

// Div returns a / b. Dividing by an exact zero is a division-by-zero
// condition. Division by 0.0 follows IEEE semantics.
func Div(a, b *num) (*num, error) {
	if !b.float && b.exact.Sign() == 0 {
		return nil, condition.DivideByZero()
	}

	if a.float || b.float {
		return Float(a.Float64() / b.Float64()), nil
	}

	return &num{exact: new(big.Rat).Quo(a.exact, b.exact)}, nil
}

// Neg returns 0 - n.
func Neg(n *num) *num {
	return Sub(Int(0), n)
}

// Abs returns the absolute value of n.
func Abs(n *num) *num {
	if n.float {
		return Float(math.Abs(n.inexact))
	}

	return &num{exact: new(big.Rat).Abs(n.exact)}
}

// Compare compares a and b after two-operand promotion.
// It returns -1, 0, or +1. If either operand is NaN, ok is false.
func Compare(a, b *num) (c int, ok bool) {
	if !a.float && !b.float {
		return a.exact.Cmp(b.exact), true
	}

	x, y := a.Float64(), b.Float64()

	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return 0, false
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	}

	return 0, true
}

// Mod returns a modulo b, which has the sign of b (floor division).
func Mod(a, b *num) (*num, error) {
	return remainder(a, b, true)
}

// Rem returns the remainder of a divided by b, which has the sign of a
// (truncating division).
func Rem(a, b *num) (*num, error) {
	return remainder(a, b, false)
}

func remainder(a, b *num, floor bool) (*num, error) {
	for _, n := range []*num{a, b} {
		if n.Kind() == Ratio {
			return nil, condition.Type("integer or float", n)
		}
	}

	if b.IsZero() {
		return nil, condition.DivideByZero()
	}

	if a.float || b.float {
		x, y := a.Float64(), b.Float64()

		r := math.Mod(x, y)
		if floor && r != 0 && (r < 0) != (y < 0) {
			r += y
		}

		return Float(r), nil
	}

	x, y := a.exact.Num(), b.exact.Num()

	r := new(big.Int).Rem(x, y)
	if floor && r.Sign() != 0 && r.Sign() != y.Sign() {
		r.Add(r, y)
	}

	return BigInt(r), nil
}
