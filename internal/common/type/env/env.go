// Released under an MIT license. See LICENSE.

// Package env provides corelisp's lexical environment type.
//
// An env is not safe for concurrent use. Hosts that share an env, or a
// closure that captured one, between goroutines must serialize access.
package env

import (
	"sort"

	"github.com/corelisp/corelisp/internal/common/condition"
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/sym"
)

const name = "environment"

// T (env) maps symbols to values and links to its enclosing scope.
type T struct {
	previous *T
	values   map[sym.T]cell.I
}

type env = T

// New creates a new env enclosed by previous. The global env has no
// previous env.
func New(previous *T) *env {
	return &env{
		previous: previous,
		values:   map[sym.T]cell.I{},
	}
}

// Assign replaces the value of k in the nearest scope that binds it.
func (e *env) Assign(k *sym.T, v cell.I) error {
	for s := e; s != nil; s = s.previous {
		if _, ok := s.values[*k]; ok {
			s.values[*k] = v

			return nil
		}
	}

	return condition.Unbound(k.Literal())
}

// Bound returns true if k is bound in this scope, ignoring enclosing scopes.
func (e *env) Bound(k *sym.T) bool {
	_, ok := e.values[*k]

	return ok
}

// Define associates k with v in the env e. Enclosing scopes are not searched.
func (e *env) Define(k *sym.T, v cell.I) {
	e.values[*k] = v
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	f, ok := c.(*env)

	return ok && e == f
}

// Lookup retrieves the value of k from the nearest scope that binds it.
func (e *env) Lookup(k *sym.T) (cell.I, error) {
	for s := e; s != nil; s = s.previous {
		if v, ok := s.values[*k]; ok {
			return v, nil
		}
	}

	return nil, condition.Unbound(k.Literal())
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns the sorted names of every symbol visible from e.
func (e *env) Names() []string {
	seen := map[string]struct{}{}

	for s := e; s != nil; s = s.previous {
		for k := range s.values {
			seen[k.Literal()] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)
}
