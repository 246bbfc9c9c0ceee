package env

import (
	"errors"
	"testing"

	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/type/num"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

func TestAssign(t *testing.T) {
	x := sym.Intern("x")

	global := New(nil)
	global.Define(x, num.Int(1))

	local := New(global)
	if err := local.Assign(x, num.Int(2)); err != nil {
		t.Fatal(err)
	}

	if local.Bound(x) {
		t.Fatal("Assign should not create a binding in the local scope")
	}

	v, _ := global.Lookup(x)
	if !v.Equal(num.Int(2)) {
		t.Fatalf("expected 2; got %v", v)
	}

	err := local.Assign(sym.Intern("y"), num.Int(3))
	if !errors.Is(err, condition.ErrUnboundSymbol) {
		t.Fatalf("expected unbound symbol; got %v", err)
	}
}

func TestLookup(t *testing.T) {
	x := sym.Intern("x")

	global := New(nil)
	global.Define(x, num.Int(1))

	local := New(global)
	local.Define(x, num.Int(2))

	v, err := local.Lookup(x)
	if err != nil || !v.Equal(num.Int(2)) {
		t.Fatalf("expected the local binding to shadow; got %v %v", v, err)
	}

	v, err = global.Lookup(x)
	if err != nil || !v.Equal(num.Int(1)) {
		t.Fatalf("expected the global binding to be untouched; got %v %v", v, err)
	}

	if _, err := local.Lookup(sym.Keyword("x")); !errors.Is(err, condition.ErrUnboundSymbol) {
		t.Fatalf("a keyword is a different symbol; got %v", err)
	}
}

func TestNames(t *testing.T) {
	global := New(nil)
	global.Define(sym.Intern("b"), num.Int(1))
	global.Define(sym.Intern("a"), num.Int(1))

	local := New(global)
	local.Define(sym.Intern("a"), num.Int(2))

	names := local.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Fatalf("expected [A B]; got %v", names)
	}
}
