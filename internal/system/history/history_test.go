package history

import (
	"bytes"
	"io"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Load(func(r io.Reader) (int, error) {
		t.Fatal("a missing history file should not be read")

		return 0, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, text := range []string{"(+ 1 2)\n(car x)\n", "(cdr y)\n"} {
		text := text

		err = Save(func(w io.Writer) (int, error) {
			return io.WriteString(w, text)
		})
		if err != nil {
			t.Fatal(err)
		}

		var b bytes.Buffer

		err = Load(func(r io.Reader) (int, error) {
			n, err := b.ReadFrom(r)

			return int(n), err
		})
		if err != nil {
			t.Fatal(err)
		}

		if b.String() != text {
			t.Fatalf("expected %q; got %q", text, b.String())
		}
	}
}
