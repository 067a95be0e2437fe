// Released under an MIT license. See LICENSE.

// Package parser turns a token stream into a datum tree. It tolerates
// input that ends mid-expression by reporting Incomplete instead of an
// error, so a REPL can append more text and retry.
package parser

import (
	"fmt"

	"github.com/Mortrax/shaka-scheme/internal/datum"
	"github.com/Mortrax/shaka-scheme/internal/token"
)

// Kind identifies which variant of Result was produced.
type Kind int

// The kinds ParseDatum can return.
const (
	// KindComplete holds a fully parsed datum in Result.Datum.
	KindComplete Kind = iota

	// KindIncomplete means the input ended mid-expression; more text
	// may complete it. Not an error.
	KindIncomplete

	// KindLexerError means the lexer rejected the input outright.
	KindLexerError

	// KindParserError means the token stream did not match the
	// grammar, even though every token was individually well formed.
	KindParserError

	// KindDirective means a #!name directive was read. It is not a
	// datum; Result.Directive holds the name ("quit", "fold-case", …)
	// for the host to act on.
	KindDirective
)

// Result is the outcome of one ParseDatum call.
type Result struct {
	Kind      Kind
	Datum     datum.Value
	Directive string
	Err       error
}

// ParserError reports a token sequence the grammar does not accept.
type ParserError struct {
	Message string
	At      token.Loc
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.At, e.Message)
}

func complete(d datum.Value) Result       { return Result{Kind: KindComplete, Datum: d} }
func incomplete() Result                  { return Result{Kind: KindIncomplete} }
func lexerError(err error) Result         { return Result{Kind: KindLexerError, Err: err} }
func parserError(err *ParserError) Result { return Result{Kind: KindParserError, Err: err} }
func directive(name string) Result        { return Result{Kind: KindDirective, Directive: name} }
