package chr

import (
	"testing"

	"github.com/corelisp/corelisp/internal/common/interface/literal"
)

func TestNamed(t *testing.T) {
	for _, c := range []struct {
		name    string
		r       rune
		printed string
	}{
		{"a", 'a', `#\a`},
		{"A", 'A', `#\A`},
		{"Space", ' ', `#\Space`},
		{"space", ' ', `#\Space`},
		{"Newline", '\n', `#\Newline`},
		{"Linefeed", '\n', `#\Newline`},
		{"Tab", '\t', `#\Tab`},
		{"λ", 'λ', `#\λ`},
	} {
		v, ok := Named(c.name)
		if !ok {
			t.Fatalf("%s: expected a character", c.name)
		}

		ch, _ := To(v)
		if ch.Rune() != c.r {
			t.Fatalf("%s: expected %q; got %q", c.name, c.r, ch.Rune())
		}

		if s := literal.String(v); s != c.printed {
			t.Fatalf("%s: expected %s; got %s", c.name, c.printed, s)
		}
	}

	if _, ok := Named("NoSuchCharacter"); ok {
		t.Fatal("unknown names should be rejected")
	}
}
