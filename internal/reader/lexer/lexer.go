// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for corelisp.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/corelisp/corelisp/internal/common/struct/loc"
	"github.com/corelisp/corelisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	source loc.T // Location of the current byte.
	start  loc.T // Location of the current token's first byte.

	tokens []*token.T // Scanned but not yet returned.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{source: loc.Start(label)}

	l.start = l.source
	l.state = skipWhitespace

	return l
}

// Tokenize returns every token in text, in source order.
func Tokenize(label, text string) []*token.T {
	l := New(label)

	l.Scan(text)

	var ts []*token.T
	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

// Scan passes a text buffer to the lexer for scanning. Text is appended
// to any text not yet scanned. Buffers should end at a token boundary.
func (l *T) Scan(text string) {
	l.bytes += text

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	l.source.Advance(r)
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.start))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

func delimiter(r rune) bool {
	switch r {
	case eof, '(', ')', '\'', '`', ',', '"', ';':
		return true
	}

	return unicode.IsSpace(r)
}

// T states.

func afterComma(l *T) action {
	r, w := l.peek()
	if r == '@' {
		l.accept(r, w)
		l.emit(token.CommaAt, l.Text())

		return skipWhitespace
	}

	l.emit(',', l.Text())

	return skipWhitespace
}

func afterHash(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		l.emit(token.Unterminated, l.Text())

		return nil
	case '\'':
		l.accept(r, w)
		l.emit(token.Function, l.Text())
	case '\\':
		l.accept(r, w)

		return scanCharacter
	case '|':
		l.accept(r, w)

		return skipBlockComment
	default:
		l.accept(r, w)
		l.emit(token.Error, l.Text())
	}

	return skipWhitespace
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		if delimiter(r) {
			if s := l.Text(); s == "." {
				l.emit(token.Dot, s)
			} else {
				l.emit(token.Atom, s)
			}

			if r == eof {
				return nil
			}

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanCharacter(l *T) action {
	r := l.next()
	if r == eof {
		l.emit(token.Unterminated, l.Text())

		return nil
	}

	if unicode.IsLetter(r) {
		for {
			r, w := l.peek()
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
				break
			}

			l.accept(r, w)
		}
	}

	l.emit(token.Character, l.Text()[2:])

	return skipWhitespace
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Unterminated, l.Text())

			return nil
		case '\\':
			if l.next() == eof {
				l.emit(token.Unterminated, l.Text())

				return nil
			}
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		}
	}
}

func skipBlockComment(l *T) action {
	depth := 1

	for depth > 0 {
		switch l.next() {
		case eof:
			l.emit(token.Unterminated, l.Text())

			return nil
		case '#':
			if r, w := l.peek(); r == '|' {
				l.accept(r, w)
				depth++
			}
		case '|':
			if r, w := l.peek(); r == '#' {
				l.accept(r, w)
				depth--
			}
		}
	}

	l.skip()

	return skipWhitespace
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()

			continue
		}

		l.accept(r, w)

		switch r {
		case ';':
			return skipComment
		case '(', ')', '\'', '`':
			l.emit(token.Class(r), l.Text())

			return skipWhitespace
		case ',':
			return afterComma
		case '#':
			return afterHash
		case '"':
			return scanString
		}

		return scanAtom
	}
}
