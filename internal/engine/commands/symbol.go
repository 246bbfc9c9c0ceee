// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/create"
	"github.com/corelisp/corelisp/internal/common/type/str"
	"github.com/corelisp/corelisp/internal/common/type/sym"
	"github.com/corelisp/corelisp/internal/common/validate"
)

func isKeyword(args []cell.I) (cell.I, error) {
	s, err := symbol(args)
	if err != nil {
		return nil, err
	}

	return create.Bool(s.IsKeyword()), nil
}

func isSymbol(args []cell.I) (cell.I, error) {
	return predicate(args, sym.Is)
}

func symbolName(args []cell.I) (cell.I, error) {
	s, err := symbol(args)
	if err != nil {
		return nil, err
	}

	return str.New(s.String()), nil
}

func symbolPackage(args []cell.I) (cell.I, error) {
	s, err := symbol(args)
	if err != nil {
		return nil, err
	}

	return sym.Intern(s.Package()), nil
}

func symbol(args []cell.I) (*sym.T, error) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	s, ok := sym.To(first(args))
	if !ok {
		return nil, condition.Type("symbol", first(args))
	}

	return s, nil
}
