// Released under an MIT license. See LICENSE.

// Package datum provides shaka-scheme's tagged value model: the Scheme
// datum types shared by the lexer, parser, and virtual machine, plus the
// core list operations built on top of pairs.
package datum

// Value is a Scheme datum. Every concrete type in this package — Symbol,
// Number, Boolean, String, Character, Pair, Vector, Bytevector, Closure,
// and Unspecified — implements it.
type Value interface {
	// Bool reports the truth value of the datum in a boolean context.
	// Only the boolean false is false; every other value, including
	// Null and the number zero, is true.
	Bool() bool

	// Equal reports whether v and the receiver denote the same value.
	Equal(v Value) bool

	// String returns the external representation of the datum.
	String() string
}

// Environment is the interface a Closure's captured scope and the VM's
// env register satisfy. The concrete implementation lives in package env;
// it is named here, not imported, so that this package and env can refer
// to each other without a import cycle.
type Environment interface {
	Define(name string, v Value)
	Get(name string) (Value, bool)
	Set(name string, v Value) bool
	IsDefined(name string) bool
	Extend(params []*Symbol, variadic *Symbol, args []Value) (Environment, error)
}
