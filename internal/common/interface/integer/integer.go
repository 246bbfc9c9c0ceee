// Released under an MIT license. See LICENSE.

// Package integer converts a corelisp cell to an int64 value, if possible.
package integer

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
)

// I (integer) is anything that may hold a machine-sized integer.
type I interface {
	Int64() (int64, bool)
}

// Value returns the int64 value for a cell, if possible.
func Value(c cell.I) (int64, error) {
	i, ok := c.(I)
	if ok {
		if v, ok := i.Int64(); ok {
			return v, nil
		}
	}

	return 0, condition.Type("integer", c)
}
