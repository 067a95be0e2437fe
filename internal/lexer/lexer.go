// Released under an MIT license. See LICENSE.

// Package lexer tokenizes Scheme source text. It is pull-based: the
// parser asks for tokens one at a time through Peek and Get, and may
// push a token back with Unget, mirroring the teacher's own pull-based
// reader pipeline (internal/reader) but operating over a token, rather
// than a character, pushback queue, per the grammar Tokenizer.hpp
// implements.
package lexer

import (
	"strings"
	"unicode"

	"github.com/Mortrax/shaka-scheme/internal/report"
	"github.com/Mortrax/shaka-scheme/internal/token"
)

// T is a Scheme lexer over an in-memory source buffer.
type T struct {
	src  []rune
	pos  int
	line int
	col  int

	pending []*token.T // tokens pushed back with Unget, oldest first

	log *report.Logger
}

// New creates a lexer over src.
func New(src string) *T {
	return &T{
		src:  []rune(src),
		line: 1,
		col:  1,
		log:  report.Named("lexer"),
	}
}

// Reset rewinds the lexer to scan src from the beginning, discarding any
// pending tokens. The REPL host uses this to retry a parse after
// appending more text to a line that previously read as Incomplete.
func (l *T) Reset(src string) {
	l.src = []rune(src)
	l.pos = 0
	l.line = 1
	l.col = 1
	l.pending = nil
}

// Peek returns the next token without consuming it.
func (l *T) Peek() (*token.T, error) {
	t, err := l.Get()
	if err != nil {
		return nil, err
	}

	l.Unget(t)

	return t, nil
}

// Get returns and consumes the next token.
func (l *T) Get() (*token.T, error) {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]

		return t, nil
	}

	t, err := l.scan()
	if err != nil {
		return nil, err
	}

	l.log.Debugf("token %s", t)

	return t, nil
}

// Unget pushes t back onto the front of the token stream.
func (l *T) Unget(t *token.T) {
	l.pending = append([]*token.T{t}, l.pending...)
}

func (l *T) loc() token.Loc {
	return token.Loc{Line: l.line, Column: l.col}
}

func (l *T) eof() bool {
	return l.pos >= len(l.src)
}

func (l *T) peekRune() (rune, bool) {
	if l.eof() {
		return 0, false
	}

	return l.src[l.pos], true
}

func (l *T) peekRuneAt(offset int) (rune, bool) {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0, false
	}

	return l.src[i], true
}

func (l *T) nextRune() (rune, bool) {
	r, ok := l.peekRune()
	if !ok {
		return 0, false
	}

	l.pos++

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r, true
}

func (l *T) lexError(at token.Loc, msg string) error {
	return &LexError{Message: msg, At: at}
}

// isDelimiter reports whether r ends an atom (identifier or number).
func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("()\";|", r)
}

func isInitial(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}

	return strings.ContainsRune("!$%&*/:<=>?^_~", r)
}

func isSubsequent(r rune) bool {
	return isInitial(r) || unicode.IsDigit(r) || strings.ContainsRune(".+-@", r)
}
