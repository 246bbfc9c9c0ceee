package compare

import (
	"math/big"
	"testing"

	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/builtin"
	"github.com/corelisp/corelisp/internal/common/type/chr"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/str"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

func TestTiers(t *testing.T) {
	identity := builtin.New("IDENTITY", func(args []cell.I) (cell.I, error) {
		return args[0], nil
	})

	a := list.New(num.Int(1), num.Int(2))
	b := list.New(num.Int(1), num.Int(2))

	for _, c := range []struct {
		label           string
		x, y            cell.I
		eq, eql, equal bool
	}{
		{"same symbol", sym.Intern("a"), sym.Intern("a"), true, true, true},
		{"different symbols", sym.Intern("a"), sym.Intern("b"), false, false, false},
		{"empty", pair.Null, pair.Null, true, true, true},
		{"fixnums", num.Int(3), num.Int(3), true, true, true},
		{"ratios", num.Rat(big.NewRat(1, 2)), num.Rat(big.NewRat(1, 2)), false, true, true},
		{"floats", num.Float(1.5), num.Float(1.5), false, true, true},
		{"integer and float", num.Int(1), num.Float(1), false, false, false},
		{"characters", chr.New('a'), chr.New('a'), true, true, true},
		{"strings", str.New("abc"), str.New("abc"), false, false, true},
		{"lists", a, b, false, false, true},
		{"same list", a, a, true, true, true},
		{"procedure", identity, identity, false, false, false},
	} {
		if Eq(c.x, c.y) != c.eq {
			t.Fatalf("%s: expected EQ to be %v", c.label, c.eq)
		}

		if Eql(c.x, c.y) != c.eql {
			t.Fatalf("%s: expected EQL to be %v", c.label, c.eql)
		}

		if Equal(c.x, c.y) != c.equal {
			t.Fatalf("%s: expected EQUAL to be %v", c.label, c.equal)
		}
	}
}
