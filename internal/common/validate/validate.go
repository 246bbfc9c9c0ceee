// Released under an MIT license. See LICENSE.

// Package validate checks argument counts for builtins and special forms.
package validate

import (
	"fmt"

	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
)

// Variadic returns an arity condition unless at least min and, if max is
// not negative, at most max arguments were passed.
func Variadic(actual []cell.I, min, max int) error {
	n := len(actual)

	if n < min {
		if max == min {
			return condition.ArgumentCount(Count(min, "argument", "s"), min, n)
		}

		return condition.ArgumentCount("at least "+Count(min, "argument", "s"), min, n)
	}

	if max >= 0 && n > max {
		if max == min {
			return condition.ArgumentCount(Count(max, "argument", "s"), max, n)
		}

		return condition.ArgumentCount("at most "+Count(max, "argument", "s"), max, n)
	}

	return nil
}

// Fixed returns an arity condition unless exactly n arguments were passed.
func Fixed(actual []cell.I, n int) error {
	return Variadic(actual, n, n)
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
