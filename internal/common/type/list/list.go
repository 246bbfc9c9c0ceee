// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
//
// Pairs are immutable so every function here that produces a list builds
// it back to front.
package list

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/pair"
)

// Elements returns the elements of the proper list c.
// If c is not a proper list, ok is false.
func Elements(c cell.I) (elements []cell.I, ok bool) {
	for c != pair.Null {
		car, cdr, ok := pair.Split(c)
		if !ok {
			return nil, false
		}

		elements = append(elements, car)
		c = cdr
	}

	return elements, true
}

// Join returns a new list with the elements of every list in lists,
// sharing the last list. All but the last list must be proper lists.
// The last may be any value.
func Join(lists ...cell.I) (cell.I, bool) {
	if len(lists) == 0 {
		return pair.Null, true
	}

	end := lists[len(lists)-1]

	var elements []cell.I

	for _, l := range lists[:len(lists)-1] {
		e, ok := Elements(l)
		if !ok {
			return nil, false
		}

		elements = append(elements, e...)
	}

	return Dotted(end, elements...), true
}

// Length returns the number of elements in list.
// If list is not a proper list, ok is false.
func Length(list cell.I) (length int64, ok bool) {
	for list != pair.Null {
		_, cdr, ok := pair.Split(list)
		if !ok {
			return 0, false
		}

		length++

		list = cdr
	}

	return length, true
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Dotted(pair.Null, elements...)
}

// Dotted creates a list of elements terminated by end instead of Null.
func Dotted(end cell.I, elements ...cell.I) cell.I {
	l := end

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Reverse returns a new list with the elements of list in reverse order.
// If list is not a proper list, ok is false.
func Reverse(list cell.I) (cell.I, bool) {
	reversed := pair.Null

	for list != pair.Null {
		car, cdr, ok := pair.Split(list)
		if !ok {
			return nil, false
		}

		reversed = pair.Cons(car, reversed)

		list = cdr
	}

	return reversed, true
}

// Tail returns the sublist of list starting at element index.
// Walking past the end of list returns Null. If a non-pair is reached
// before index elements have been skipped, ok is false.
func Tail(list cell.I, index int64) (cell.I, bool) {
	for ; index > 0 && list != pair.Null; index-- {
		_, cdr, ok := pair.Split(list)
		if !ok {
			return nil, false
		}

		list = cdr
	}

	return list, true
}
