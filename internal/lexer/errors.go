// Released under an MIT license. See LICENSE.

package lexer

import (
	"errors"
	"fmt"

	"github.com/Mortrax/shaka-scheme/internal/token"
)

// ErrIncomplete is returned by Get/Peek when the remaining input ends in
// the middle of a token that could still be completed by more input —
// e.g. an unterminated string, or a lone "#" at end of input. It is not
// a LexError: the caller (typically a REPL) should fetch more text and
// retry rather than reporting a failure.
var ErrIncomplete = errors.New("incomplete token")

// LexError reports input the grammar rejects outright — it will still be
// malformed no matter how much more text follows.
type LexError struct {
	Message string
	At      token.Loc
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.At, e.Message)
}
