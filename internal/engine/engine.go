// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed corelisp code.
package engine

import (
	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/common/type/env"
	"github.com/corelisp/corelisp/internal/engine/commands"
	"github.com/corelisp/corelisp/internal/engine/eval"
)

// T (engine) is a facade in front of the machinery for evaluating
// corelisp code. Each engine has its own global environment.
type T struct {
	global *env.T
}

// New creates a new T with a freshly populated global environment.
func New() *T {
	global := env.New(nil)

	commands.Install(global)

	return &T{global: global}
}

// Evaluate returns the value of c in the global environment.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	return eval.Evaluate(c, e.global)
}

// Global returns the global environment.
func (e *T) Global() *env.T {
	return e.global
}

// Names returns the names bound in the global environment.
func (e *T) Names() []string {
	return e.global.Names()
}
