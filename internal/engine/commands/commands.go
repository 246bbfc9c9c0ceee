// Released under an MIT license. See LICENSE.

// Package commands provides corelisp's builtin procedure library.
package commands

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/builtin"
	"github.com/corelisp/corelisp/internal/common/type/env"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

// Functions returns the builtin procedures, by name.
func Functions() map[string]builtin.Function {
	return map[string]builtin.Function{
		"*":              mul,
		"+":              add,
		"-":              sub,
		"/":              div,
		"1+":             inc,
		"1-":             dec,
		"<":              lt,
		"<=":             le,
		"=":              numEq,
		">":              gt,
		">=":             ge,
		"ABS":            abs,
		"APPEND":         appendLists,
		"ATOM":           isAtom,
		"CAR":            car,
		"CDR":            cdr,
		"CHARACTERP":     isCharacter,
		"CONS":           cons,
		"CONSP":          isCons,
		"DENOMINATOR":    denominator,
		"DOCUMENTATION":  documentation,
		"EQ":             eq,
		"EQL":            eql,
		"EQUAL":          equal,
		"FLOAT":          float,
		"FLOATP":         isFloat,
		"FUNCTIONP":      isFunction,
		"INTEGERP":       isInteger,
		"KEYWORDP":       isKeyword,
		"LENGTH":         length,
		"LIST":           makeList,
		"LISTP":          isList,
		"MAX":            max,
		"MIN":            min,
		"MOD":            mod,
		"NTH":            nth,
		"NULL":           isNull,
		"NUMBERP":        isNumber,
		"NUMERATOR":      numerator,
		"RATIONALP":      isRational,
		"REM":            rem,
		"REVERSE":        reverse,
		"STRINGP":        isString,
		"SYMBOL-NAME":    symbolName,
		"SYMBOL-PACKAGE": symbolPackage,
		"SYMBOLP":        isSymbol,
		"ZEROP":          isZero,
	}
}

// Install defines every builtin, and T, in the env e.
func Install(e *env.T) {
	for name, fn := range Functions() {
		e.Define(sym.Intern(name), builtin.New(name, fn))
	}

	e.Define(sym.True, sym.True)
}

func first(args []cell.I) cell.I {
	return args[0]
}
