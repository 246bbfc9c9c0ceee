// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all corelisp values.
package cell

// I (cell) is the basic unit of storage in corelisp.
//
// Equal is structural equality (EQUAL). Identity and scalar equality
// (EQ and EQL) are provided by the compare package.
type I interface {
	Equal(c I) bool
	Name() string
}
