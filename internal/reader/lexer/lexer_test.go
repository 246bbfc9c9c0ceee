package lexer

import (
	"testing"

	"github.com/corelisp/corelisp/internal/common/struct/loc"
	"github.com/corelisp/corelisp/internal/common/struct/token"
)

func TestAtoms(t *testing.T) {
	h := setup(t, "Atoms")

	h.scan("(+ 1 3/4 -2.5e3)\n",
		h.literal("("),
		h.atom("+"),
		h.space(1),
		h.atom("1"),
		h.space(1),
		h.atom("3/4"),
		h.space(1),
		h.atom("-2.5e3"),
		h.literal(")"),
		nil,
	)
}

func TestBlockComment(t *testing.T) {
	h := setup(t, "BlockComment")

	h.scan("#| outer #| inner |# |#x",
		h.space(len("#| outer #| inner |# |#")),
		h.atom("x"),
		nil,
	)
}

func TestCharacters(t *testing.T) {
	h := setup(t, "Characters")

	h.scan(`#\a #\Space #\(`,
		h.other(token.Character, "a", 3),
		h.space(1),
		h.other(token.Character, "Space", 7),
		h.space(1),
		h.other(token.Character, "(", 3),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("a ; the rest is ignored\nb",
		h.atom("a"),
		h.newline(),
		h.atom("b"),
		nil,
	)
}

func TestDot(t *testing.T) {
	h := setup(t, "Dot")

	h.scan("(a . b)",
		h.literal("("),
		h.atom("a"),
		h.space(1),
		h.other(token.Dot, ".", 1),
		h.space(1),
		h.atom("b"),
		h.literal(")"),
		nil,
	)
}

func TestReaderMacros(t *testing.T) {
	h := setup(t, "ReaderMacros")

	h.scan("'a `(,b ,@c) #'f",
		h.literal("'"),
		h.atom("a"),
		h.space(1),
		h.literal("`"),
		h.literal("("),
		h.literal(","),
		h.atom("b"),
		h.space(1),
		h.other(token.CommaAt, ",@", 2),
		h.atom("c"),
		h.literal(")"),
		h.space(1),
		h.other(token.Function, "#'", 2),
		h.atom("f"),
		nil,
	)
}

func TestString(t *testing.T) {
	h := setup(t, "String")

	h.scan(`"a \"quoted\" word"`,
		h.other(token.String, `"a \"quoted\" word"`, 19),
		nil,
	)
}

func TestUnterminated(t *testing.T) {
	for _, s := range []string{`"abc`, `#|`, `#\`, `#`} {
		h := setup(t, "Unterminated")

		h.scan(s,
			h.other(token.Unterminated, s, len(s)),
			nil,
		)
	}
}

func TestTokenize(t *testing.T) {
	ts := Tokenize("Tokenize", "(a)\n(b)")
	if len(ts) != 6 {
		t.Fatalf("Expected 6 tokens; got %d", len(ts))
	}

	last := ts[len(ts)-1]
	if !last.Is(')') || last.Source().Line != 2 || last.Source().Char != 3 {
		t.Fatalf("Expected ')' at 2:3; got %v", last)
	}
}

type harness struct {
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{}) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer:  New(label),
		source: loc.Start(label),
		t:      t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) atom(s string) *token.T {
	return h.other(token.Atom, s, len(s))
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s, len(s))
}

func (h *harness) newline() *token.T {
	h.source.Line++
	h.source.Char = 1

	return skip
}

// other returns a token with value s that spans n characters of input.
func (h *harness) other(class token.Class, s string, n int) *token.T {
	t := token.New(class, s, h.source)

	h.source.Char += n

	return t
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.source.Char += n

	return skip
}
