// Released under an MIT license. See LICENSE.

package datum

import "math/big"

// Number wraps Go's arbitrary-precision rational type. It covers both
// the integer and rational layers of R7RS's numeric tower; real (inexact)
// numbers are represented as rationals with a denominator, matching the
// precision the lexer's decimal-point grammar actually needs.
type Number big.Rat

// NewNumber parses s (as accepted by (*big.Rat).SetString) into a Number.
// It reports ok=false rather than panicking so the parser can turn a
// malformed literal into a ParserError instead of crashing.
func NewNumber(s string) (*Number, bool) {
	r := &big.Rat{}

	if _, ok := r.SetString(s); !ok {
		return nil, false
	}

	return (*Number)(r), true
}

// NumberFromInt returns the Number for the integer i.
func NumberFromInt(i int64) *Number {
	return (*Number)(big.NewRat(i, 1))
}

// NumberFromRat wraps r as a Number.
func NumberFromRat(r *big.Rat) *Number {
	return (*Number)(r)
}

// Rat returns the Number's value as a *big.Rat.
func (n *Number) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// Bool reports that every number is true, including zero.
func (n *Number) Bool() bool { return true }

// Equal reports whether v is a Number with the same value.
func (n *Number) Equal(v Value) bool {
	o, ok := v.(*Number)
	return ok && n.Rat().Cmp(o.Rat()) == 0
}

// String returns the number as an integer, or as a fraction n/d when it
// is not whole (1.5 prints as 3/2).
func (n *Number) String() string {
	return n.Rat().RatString()
}

// IsNumber reports whether v is a Number.
func IsNumber(v Value) bool {
	_, ok := v.(*Number)
	return ok
}
