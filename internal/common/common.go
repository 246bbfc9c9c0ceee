// Released under an MIT license. See LICENSE.

// Package common defines names shared by every corelisp package.
package common

import (
	"fmt"
)

// Package names.
const (
	CommonLisp = "COMMON-LISP"
	Keyword    = "KEYWORD"
)

type Stringer = fmt.Stringer
