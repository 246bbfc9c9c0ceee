package lisp_test

import (
	"errors"
	"testing"

	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/reader/parser"
	"github.com/corelisp/corelisp/pkg/lisp"
)

func TestEval(t *testing.T) {
	i := lisp.New()

	for _, c := range []struct {
		text     string
		expected string
	}{
		{"", "()"},
		{"(defun fact (n) (if (= n 0) 1 (* n (fact (- n 1)))))", "#<FUNCTION FACT>"},
		{"(fact 25)", "15511210043330985984000000"},
		{"(defvar *x* 1) (setq *x* (+ *x* 1)) *x*", "2"},
		{"(/ 1 3.0)", "0.3333333333333333"},
		{"'(a . (b . (c . nil)))", "(A B C)"},
		{"(symbol-package :x)", "KEYWORD"},
	} {
		s, err := i.Eval(c.text)
		if err != nil {
			t.Fatalf("%s: %v", c.text, err)
		}

		if s != c.expected {
			t.Fatalf("%s: expected %s; got %s", c.text, c.expected, s)
		}
	}
}

func TestErrors(t *testing.T) {
	i := lisp.New()

	if _, err := i.Eval("(car 'a)"); !errors.Is(err, condition.ErrTypeError) {
		t.Fatalf("expected a type error; got %v", err)
	}

	if _, err := i.Eval("(+ 1"); !errors.Is(err, parser.ErrIncomplete) {
		t.Fatalf("expected incomplete input; got %v", err)
	}

	if _, err := i.Eval("(defvar y 1) (undefined) (setq y 2)"); !errors.Is(err, condition.ErrUnboundSymbol) {
		t.Fatalf("expected an unbound symbol; got %v", err)
	}

	if s, _ := i.Eval("y"); s != "1" {
		t.Fatalf("evaluation should stop at the first error; got %s", s)
	}
}

func TestIndependence(t *testing.T) {
	a, b := lisp.New(), lisp.New()

	if _, err := a.Eval("(defvar shared 1)"); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Eval("shared"); !errors.Is(err, condition.ErrUnboundSymbol) {
		t.Fatalf("interpreters should not share bindings; got %v", err)
	}
}

func TestDefine(t *testing.T) {
	i := lisp.New()

	v, err := i.EvalValue("(list 1 2)")
	if err != nil {
		t.Fatal(err)
	}

	i.Define("pair-of-numbers", v)

	if s, err := i.Eval("(length pair-of-numbers)"); err != nil || s != "2" {
		t.Fatalf("expected 2; got %s %v", s, err)
	}
}

func TestEvalValue(t *testing.T) {
	v, err := lisp.New().EvalValue("(list 1 2)")
	if err != nil {
		t.Fatal(err)
	}

	if s := lisp.Print(v); s != "(1 2)" {
		t.Fatalf("expected (1 2); got %s", s)
	}
}
