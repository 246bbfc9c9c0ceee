// Released under an MIT license. See LICENSE.

// Package reader turns corelisp source text into values.
package reader

import (
	"errors"
	"strings"

	"github.com/corelisp/corelisp/internal/common/interface/cell"
	"github.com/corelisp/corelisp/internal/reader/lexer"
	"github.com/corelisp/corelisp/internal/reader/parser"
)

// T (reader) accumulates lines until they hold complete expressions.
type T struct {
	name    string
	pending strings.Builder
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Pending returns true if previously scanned lines end mid-expression.
func (r *reader) Pending() bool {
	return r.pending.Len() > 0
}

// Reset discards any partial expression.
func (r *reader) Reset() {
	r.pending.Reset()
}

// Scan adds line to any pending text. If the text now holds only complete
// expressions they are returned and the pending text is cleared. If it
// ends mid-expression, Scan returns no values and no error and keeps the
// text. Any other syntax error discards the pending text.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.pending.WriteString(line)

	cs, err := Read(r.name, r.pending.String())
	if errors.Is(err, parser.ErrIncomplete) {
		return nil, nil
	}

	r.pending.Reset()

	return cs, err
}

// Read returns every expression in text.
func Read(name, text string) ([]cell.I, error) {
	return parser.Parse(lexer.Tokenize(name, text))
}
