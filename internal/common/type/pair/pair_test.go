package pair

import (
	"testing"

	"github.com/corelisp/corelisp/internal/common/type/sym"
)

func TestEqual(t *testing.T) {
	a := Cons(sym.Intern("a"), Cons(sym.Intern("b"), Null))
	b := Cons(sym.Intern("a"), Cons(sym.Intern("b"), Null))

	if !a.Equal(b) {
		t.Fatalf("%v should equal %v", a, b)
	}

	c := Cons(sym.Intern("a"), sym.Intern("b"))
	if a.Equal(c) || c.Equal(a) {
		t.Fatalf("%v should not equal %v", a, c)
	}

	if !Null.Equal(Null) || Null.Equal(a) || a.Equal(Null) {
		t.Fatal("Null should only equal Null")
	}
}

func TestLiteral(t *testing.T) {
	x := sym.Intern("x")

	for _, c := range []struct {
		label    string
		expected string
		actual   string
	}{
		{"empty", "()", Null.(*T).Literal()},
		{"proper", "(X X)", Cons(x, Cons(x, Null)).(*T).Literal()},
		{"dotted", "(X . X)", Cons(x, x).(*T).Literal()},
		{"nested", "((X) X)", Cons(Cons(x, Null), Cons(x, Null)).(*T).Literal()},
		{"quote", "'X", Cons(sym.Quote, Cons(x, Null)).(*T).Literal()},
		{"backquote", "`(,X ,@X)", Cons(sym.Quasiquote, Cons(
			Cons(Cons(sym.Unquote, Cons(x, Null)),
				Cons(Cons(sym.UnquoteSplicing, Cons(x, Null)), Null)),
			Null)).(*T).Literal()},
		{"quote with two operands", "(QUOTE X X)", Cons(sym.Quote, Cons(x, Cons(x, Null))).(*T).Literal()},
	} {
		if c.actual != c.expected {
			t.Fatalf("%s: expected %s; got %s", c.label, c.expected, c.actual)
		}
	}
}

func TestSplit(t *testing.T) {
	if _, _, ok := Split(Null); ok {
		t.Fatal("Null should not split")
	}

	if Is(Null) {
		t.Fatal("Null is not a non-empty pair")
	}

	car, cdr, ok := Split(Cons(sym.True, Null))
	if !ok || car != sym.True || cdr != Null {
		t.Fatalf("unexpected split: %v %v %v", car, cdr, ok)
	}

	if v, ok := Car(Null); !ok || v != Null {
		t.Fatal("the car of Null should be Null")
	}

	if _, ok := Cdr(sym.True); ok {
		t.Fatal("a symbol has no cdr")
	}
}
