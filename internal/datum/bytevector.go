// Released under an MIT license. See LICENSE.

package datum

import (
	"fmt"
	"strings"
)

// Bytevector is a fixed-length sequence of bytes.
type Bytevector struct {
	bytes []byte
}

// NewBytevector validates that every element of elements is in [0, 255]
// and wraps them as a Bytevector. TypeError is returned otherwise — this
// is the range check the original Shaka Scheme tokenizer performs on each
// #u8(...) element.
func NewBytevector(elements []int) (*Bytevector, error) {
	bytes := make([]byte, len(elements))

	for i, e := range elements {
		if e < 0 || e > 255 {
			return nil, typeError("bytevector", "byte in [0, 255]", NumberFromInt(int64(e)))
		}

		bytes[i] = byte(e)
	}

	return &Bytevector{bytes: bytes}, nil
}

// Len returns the number of bytes in the bytevector.
func (b *Bytevector) Len() int {
	return len(b.bytes)
}

// Bool reports that every bytevector is true.
func (b *Bytevector) Bool() bool { return true }

// Equal reports whether v is a Bytevector with the same bytes.
func (b *Bytevector) Equal(v Value) bool {
	o, ok := v.(*Bytevector)
	if !ok || len(b.bytes) != len(o.bytes) {
		return false
	}

	for i, x := range b.bytes {
		if x != o.bytes[i] {
			return false
		}
	}

	return true
}

// String returns the #u8(...) external representation.
func (b *Bytevector) String() string {
	var s strings.Builder

	s.WriteString("#u8(")

	for i, x := range b.bytes {
		if i > 0 {
			s.WriteByte(' ')
		}

		fmt.Fprintf(&s, "%d", x)
	}

	s.WriteByte(')')

	return s.String()
}
