// Released under an MIT license. See LICENSE.

package datum

import "fmt"

// Character wraps a single Unicode scalar value.
type Character rune

// Bool reports that every character is true.
func (c *Character) Bool() bool { return true }

// Equal reports whether v is the same Character.
func (c *Character) Equal(v Value) bool {
	o, ok := v.(*Character)
	return ok && *c == *o
}

// String returns the #\x external representation of the character.
func (c *Character) String() string {
	switch rune(*c) {
	case ' ':
		return "#\\space"
	case '\n':
		return "#\\newline"
	case '\t':
		return "#\\tab"
	case 0:
		return "#\\null"
	}

	return fmt.Sprintf("#\\%c", rune(*c))
}

// NewCharacter returns the Character for the rune r.
func NewCharacter(r rune) *Character {
	c := Character(r)
	return &c
}
