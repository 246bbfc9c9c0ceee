// Released under an MIT license. See LICENSE.

// Package num provides corelisp's numeric tower.
//
// Exact numbers (integers and ratios) wrap Go's big.Rat, which keeps every
// value in lowest terms with a positive denominator. A ratio whose
// denominator is 1 is an integer. Inexact numbers are IEEE doubles.
package num

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/corelisp/corelisp/internal/common"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
)

const name = "number"

// Kind is the representation of a num.
type Kind int

// Numeric kinds, in promotion order.
const (
	Integer Kind = iota
	Ratio
	Double
)

// String returns the type name for the kind k.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Ratio:
		return "ratio"
	}

	return "float"
}

// T (num) is an exact rational or an inexact float.
type T struct {
	exact   *big.Rat
	inexact float64
	float   bool
}

type num = T

// Int creates an integer num from i.
func Int(i int64) *num {
	return &num{exact: new(big.Rat).SetInt64(i)}
}

// BigInt creates an integer num from a copy of i.
func BigInt(i *big.Int) *num {
	return &num{exact: new(big.Rat).SetInt(i)}
}

// Rat creates an exact num from a copy of r.
// The result is an integer if r has a denominator of 1.
func Rat(r *big.Rat) *num {
	return &num{exact: new(big.Rat).Set(r)}
}

// Float creates an inexact num from f.
func Float(f float64) *num {
	return &num{inexact: f, float: true}
}

// Equal returns true if c is a num of the same kind with the same value.
func (n *num) Equal(c cell.I) bool {
	m, ok := c.(*num)
	if !ok || n.Kind() != m.Kind() {
		return false
	}

	if n.float {
		return n.inexact == m.inexact
	}

	return n.exact.Cmp(m.exact) == 0
}

// Literal returns the printed representation of the num n.
func (n *num) Literal() string {
	if n.float {
		return formatFloat(n.inexact)
	}

	if n.exact.IsInt() {
		return n.exact.Num().String()
	}

	return n.exact.Num().String() + "/" + n.exact.Denom().String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Literal()
}

// Methods specific to num.

// Kind returns the representation of the num n.
func (n *num) Kind() Kind {
	switch {
	case n.float:
		return Double
	case n.exact.IsInt():
		return Integer
	}

	return Ratio
}

// Exact returns true if n is an integer or a ratio.
func (n *num) Exact() bool {
	return !n.float
}

// Float64 returns the nearest float64 to the value of n.
func (n *num) Float64() float64 {
	if n.float {
		return n.inexact
	}

	f, _ := n.exact.Float64()

	return f
}

// Int64 returns the value of n if n is an integer that fits in an int64.
func (n *num) Int64() (int64, bool) {
	if n.float || !n.exact.IsInt() {
		return 0, false
	}

	i := n.exact.Num()
	if !i.IsInt64() {
		return 0, false
	}

	return i.Int64(), true
}

// Rat returns a copy of the exact value of n. It returns nil if n is a float.
func (n *num) Rat() *big.Rat {
	if n.float {
		return nil
	}

	return new(big.Rat).Set(n.exact)
}

// Numerator returns the numerator of an exact n.
func (n *num) Numerator() *big.Int {
	return new(big.Int).Set(n.exact.Num())
}

// Denominator returns the denominator of an exact n. It is always positive.
func (n *num) Denominator() *big.Int {
	return new(big.Int).Set(n.exact.Denom())
}

// IsZero returns true if n is zero.
func (n *num) IsZero() bool {
	if n.float {
		return n.inexact == 0
	}

	return n.exact.Sign() == 0
}

// Sign returns -1, 0, or +1 depending on the sign of n. NaN reports 0.
func (n *num) Sign() int {
	if !n.float {
		return n.exact.Sign()
	}

	switch {
	case n.inexact < 0:
		return -1
	case n.inexact > 0:
		return 1
	}

	return 0
}

// Functions specific to num.

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a num if c is a num.
func To(c cell.I) (*num, bool) {
	n, ok := c.(*num)

	return n, ok
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsNaN(f):
		return "NaN"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}

	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}

	return s + ".0"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
