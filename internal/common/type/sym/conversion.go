// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
)

// Variable returns a sym if c can name a variable.
// Keywords and T are constants and cannot be bound.
func Variable(c cell.I) (*sym, bool) {
	s, ok := c.(*sym)
	if !ok || s.IsKeyword() || s == True {
		return nil, false
	}

	return s, true
}
