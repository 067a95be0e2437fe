// Released under an MIT license. See LICENSE.

package datum

import "strings"

// Vector is a fixed-length, mutable sequence of datums.
type Vector struct {
	elements []Value
}

// NewVector wraps elements as a Vector. The slice is taken by reference.
func NewVector(elements []Value) *Vector {
	return &Vector{elements: elements}
}

// Len returns the number of elements in the vector.
func (v *Vector) Len() int {
	return len(v.elements)
}

// Ref returns the element at index i.
func (v *Vector) Ref(i int) (Value, error) {
	if i < 0 || i >= len(v.elements) {
		return nil, typeError("vector-ref", "valid index", NumberFromInt(int64(i)))
	}

	return v.elements[i], nil
}

// Set destructively sets the element at index i.
func (v *Vector) Set(i int, val Value) error {
	if i < 0 || i >= len(v.elements) {
		return typeError("vector-set!", "valid index", NumberFromInt(int64(i)))
	}

	v.elements[i] = val

	return nil
}

// Bool reports that every vector is true.
func (v *Vector) Bool() bool { return true }

// Equal reports whether val is a Vector of equal elements in order.
func (v *Vector) Equal(val Value) bool {
	o, ok := val.(*Vector)
	if !ok || len(v.elements) != len(o.elements) {
		return false
	}

	for i, e := range v.elements {
		if !e.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// String returns the #(...) external representation.
func (v *Vector) String() string {
	var b strings.Builder

	b.WriteString("#(")

	for i, e := range v.elements {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(e.String())
	}

	b.WriteByte(')')

	return b.String()
}
