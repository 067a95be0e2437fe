// Released under an MIT license. See LICENSE.

package datum

// Boolean wraps Go's bool as a Scheme datum. True and False are the only
// two instances; obtain them through MakeBoolean, never with a
// composite literal, so pointer identity can be relied on where useful.
type Boolean bool

//nolint:gochecknoglobals
var (
	trueValue  = Boolean(true)
	falseValue = Boolean(false)

	// True is the canonical Scheme #t.
	True = &trueValue

	// False is the canonical Scheme #f. It is the only datum for which
	// Bool returns false.
	False = &falseValue
)

// MakeBoolean returns True or False for the Go bool b.
func MakeBoolean(b bool) *Boolean {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean's own value — this is the one datum type
// where Bool and the underlying value coincide.
func (b *Boolean) Bool() bool {
	return bool(*b)
}

// Equal reports whether v is a Boolean with the same value.
func (b *Boolean) Equal(v Value) bool {
	o, ok := v.(*Boolean)
	return ok && *b == *o
}

// String returns "#t" or "#f".
func (b *Boolean) String() string {
	if *b {
		return "#t"
	}

	return "#f"
}
