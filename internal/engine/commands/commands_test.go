package commands

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/interface/literal"
	"github.com/corelisp/corelisp/internal/common/type/builtin"
	"github.com/corelisp/corelisp/internal/common/type/chr"
	"github.com/corelisp/corelisp/internal/common/type/env"
	"github.com/corelisp/corelisp/internal/common/type/list"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/type/pair"
	"github.com/corelisp/corelisp/internal/common/type/str"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

//nolint:gochecknoglobals
var (
	a      = sym.Intern("a")
	b      = sym.Intern("b")
	key    = sym.Keyword("k")
	ab     = list.New(a, b)
	one    = num.Int(1)
	two    = num.Int(2)
	three  = num.Int(3)
	half   = num.Rat(big.NewRat(1, 2))
	double = num.Float(1.5)
)

func TestArithmetic(t *testing.T) {
	for _, c := range []struct {
		name     string
		args     []cell.I
		expected string
	}{
		{"+", nil, "0"},
		{"+", args(one, two, three), "6"},
		{"+", args(half, half), "1"},
		{"+", args(one, double), "2.5"},
		{"-", nil, "0"},
		{"-", args(num.Int(5)), "-5"},
		{"-", args(num.Int(10), one, two), "7"},
		{"*", nil, "1"},
		{"*", args(two, three, half), "3"},
		{"/", nil, "1"},
		{"/", args(two), "1/2"},
		{"/", args(three, two), "3/2"},
		{"/", args(num.Int(12), two, three), "2"},
		{"/", args(one, num.Float(4)), "0.25"},
		{"1+", args(one), "2"},
		{"1-", args(half), "-1/2"},
		{"ABS", args(num.Int(-3)), "3"},
		{"MOD", args(num.Int(-7), three), "2"},
		{"REM", args(num.Int(-7), three), "-1"},
		{"MAX", args(one, three, two), "3"},
		{"MIN", args(one, half, two), "1/2"},
		{"MAX", args(one, num.Float(1)), "1.0"},
		{"MIN", args(one, num.Float(2)), "1.0"},
		{"MAX", args(three, num.Float(2.5)), "3.0"},
		{"MIN", args(half, one), "1/2"},
		{"FLOAT", args(half), "0.5"},
		{"NUMERATOR", args(num.Rat(big.NewRat(-6, 8))), "-3"},
		{"DENOMINATOR", args(num.Rat(big.NewRat(-6, 8))), "4"},
		{"DENOMINATOR", args(three), "1"},
	} {
		check(t, c.name, c.args, c.expected)
	}

	fails(t, "/", args(one, num.Int(0)), condition.ErrDivisionByZero)
	fails(t, "/", args(num.Int(0)), condition.ErrDivisionByZero)
	fails(t, "/", args(double, num.Int(0)), condition.ErrDivisionByZero)
	fails(t, "+", args(one, a), condition.ErrTypeError)
	fails(t, "MOD", args(one), condition.ErrArity)
	fails(t, "MAX", nil, condition.ErrArity)
	fails(t, "MIN", args(a), condition.ErrTypeError)
	fails(t, "NUMERATOR", args(double), condition.ErrTypeError)
}

func TestRelational(t *testing.T) {
	for _, c := range []struct {
		name     string
		args     []cell.I
		expected string
	}{
		{"=", nil, "T"},
		{"=", args(one), "T"},
		{"=", args(one, one, one), "T"},
		{"=", args(half, num.Float(0.5)), "T"},
		{"=", args(one, two), "()"},
		{"<", args(one, two, three), "T"},
		{"<", args(one, three, two), "()"},
		{"<=", args(one, one, two), "T"},
		{">", args(three, two, one), "T"},
		{">", args(three, three), "()"},
		{">=", args(three, three, one), "T"},
		{"=", args(num.Float(math.NaN()), num.Float(math.NaN())), "()"},
	} {
		check(t, c.name, c.args, c.expected)
	}

	fails(t, "<", args(one, a), condition.ErrTypeError)
	fails(t, "=", args(one, two, a), condition.ErrTypeError)
}

func TestEquality(t *testing.T) {
	for _, c := range []struct {
		name     string
		args     []cell.I
		expected string
	}{
		{"EQ", args(a, a), "T"},
		{"EQ", args(a, b), "()"},
		{"EQ", args(one, num.Int(1)), "T"},
		{"EQ", args(half, num.Rat(big.NewRat(1, 2))), "()"},
		{"EQL", args(half, num.Rat(big.NewRat(1, 2))), "T"},
		{"EQL", args(one, num.Float(1)), "()"},
		{"EQL", args(ab, list.New(a, b)), "()"},
		{"EQUAL", args(ab, list.New(a, b)), "T"},
		{"EQUAL", args(str.New("x"), str.New("x")), "T"},
		{"EQUAL", args(pair.Null, pair.Null), "T"},
	} {
		check(t, c.name, c.args, c.expected)
	}

	fails(t, "EQ", args(a), condition.ErrArity)
}

func TestLists(t *testing.T) {
	for _, c := range []struct {
		name     string
		args     []cell.I
		expected string
	}{
		{"CONS", args(one, ab), "(1 A B)"},
		{"CONS", args(one, two), "(1 . 2)"},
		{"CAR", args(ab), "A"},
		{"CDR", args(ab), "(B)"},
		{"LIST", nil, "()"},
		{"LIST", args(one, two), "(1 2)"},
		{"LENGTH", args(ab), "2"},
		{"LENGTH", args(pair.Null), "0"},
		{"APPEND", nil, "()"},
		{"APPEND", args(ab), "(A B)"},
		{"APPEND", args(ab, pair.Null, ab), "(A B A B)"},
		{"APPEND", args(ab, one), "(A B . 1)"},
		{"REVERSE", args(ab), "(B A)"},
		{"NTH", args(one, ab), "B"},
		{"NTH", args(three, ab), "()"},
	} {
		check(t, c.name, c.args, c.expected)
	}

	fails(t, "CAR", args(a), condition.ErrTypeError)
	fails(t, "CAR", args(pair.Null), condition.ErrTypeError)
	fails(t, "CDR", args(one), condition.ErrTypeError)
	fails(t, "CAR", nil, condition.ErrArity)
	fails(t, "CONS", args(one), condition.ErrArity)
	fails(t, "LENGTH", args(pair.Cons(one, two)), condition.ErrTypeError)
	fails(t, "APPEND", args(one, ab), condition.ErrTypeError)
	fails(t, "NTH", args(num.Int(-1), ab), condition.ErrInvalidArgument)
	fails(t, "NTH", args(half, ab), condition.ErrTypeError)
	fails(t, "REVERSE", args(a), condition.ErrTypeError)
}

func TestPredicates(t *testing.T) {
	identity := builtin.New("IDENTITY", makeList)

	for _, c := range []struct {
		name string
		yes  []cell.I
		no   []cell.I
	}{
		{"ATOM", args(a, one, pair.Null), args(ab)},
		{"CONSP", args(ab), args(a, pair.Null)},
		{"LISTP", args(ab, pair.Null), args(a, one)},
		{"NULL", args(pair.Null), args(a, ab, one)},
		{"SYMBOLP", args(a, key, sym.True), args(one, pair.Null, str.New("a"))},
		{"KEYWORDP", args(key), args(a, sym.True)},
		{"NUMBERP", args(one, half, double), args(a)},
		{"INTEGERP", args(one), args(half, double, a)},
		{"RATIONALP", args(one, half), args(double, a)},
		{"FLOATP", args(double), args(one, half, a)},
		{"ZEROP", args(num.Int(0), num.Float(0)), args(one)},
		{"STRINGP", args(str.New("a")), args(a, chr.New('a'))},
		{"CHARACTERP", args(chr.New('a')), args(a, str.New("a"))},
		{"FUNCTIONP", args(identity), args(a, pair.Null)},
	} {
		for _, v := range c.yes {
			check(t, c.name, args(v), "T")
		}

		for _, v := range c.no {
			check(t, c.name, args(v), "()")
		}

		fails(t, c.name, nil, condition.ErrArity)
	}

	fails(t, "ZEROP", args(a), condition.ErrTypeError)
	fails(t, "KEYWORDP", args(one), condition.ErrTypeError)
	fails(t, "KEYWORDP", args(pair.Null), condition.ErrTypeError)
}

func TestSymbols(t *testing.T) {
	check(t, "SYMBOL-NAME", args(a), `"A"`)
	check(t, "SYMBOL-NAME", args(key), `"K"`)
	check(t, "SYMBOL-PACKAGE", args(a), "COMMON-LISP")
	check(t, "SYMBOL-PACKAGE", args(key), "KEYWORD")

	fails(t, "SYMBOL-NAME", args(one), condition.ErrTypeError)
}

func TestInstall(t *testing.T) {
	e := env.New(nil)

	Install(e)

	v, err := e.Lookup(sym.True)
	if err != nil || v != sym.True {
		t.Fatalf("T should be bound to itself; got %v %v", v, err)
	}

	v, err = e.Lookup(sym.Intern("car"))
	if err != nil {
		t.Fatal(err)
	}

	if s := literal.String(v); s != "#<FUNCTION CAR>" {
		t.Fatalf("expected #<FUNCTION CAR>; got %s", s)
	}

	if n := len(e.Names()); n != len(Functions())+1 {
		t.Fatalf("expected %d names; got %d", len(Functions())+1, n)
	}
}

func args(cs ...cell.I) []cell.I {
	return cs
}

func apply(t *testing.T, name string, cs []cell.I) (cell.I, error) {
	t.Helper()

	fn, ok := Functions()[name]
	if !ok {
		t.Fatalf("%s is not a builtin", name)
	}

	return builtin.New(name, fn).Apply(cs)
}

func check(t *testing.T, name string, cs []cell.I, expected string) {
	t.Helper()

	v, err := apply(t, name, cs)
	if err != nil {
		t.Fatalf("(%s %s): %v", name, printed(cs), err)
	}

	if s := literal.String(v); s != expected {
		t.Fatalf("(%s %s): expected %s; got %s", name, printed(cs), expected, s)
	}
}

func fails(t *testing.T, name string, cs []cell.I, kind error) {
	t.Helper()

	v, err := apply(t, name, cs)
	if !errors.Is(err, kind) {
		t.Fatalf("(%s %s): expected %v; got %v, %v", name, printed(cs), kind, literal.String(v), err)
	}

	var c *condition.T
	if errors.As(err, &c) && c.Op != name {
		t.Fatalf("(%s %s): expected the error to name %s; got %q", name, printed(cs), name, c.Op)
	}
}

func printed(cs []cell.I) string {
	s := literal.String(list.New(cs...))

	return s[1 : len(s)-1]
}
