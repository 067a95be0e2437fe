// Released under an MIT license. See LICENSE.

package datum

// unspecifiedValue is the single instance of the unspecified datum,
// returned by operations such as set! that have no meaningful value.
type unspecifiedValue struct{}

// Unspecified is the result of an expression whose value R7RS leaves
// undefined, e.g. assignment.
var Unspecified Value = &unspecifiedValue{}

func (*unspecifiedValue) Bool() bool { return true }

func (u *unspecifiedValue) Equal(v Value) bool {
	_, ok := v.(*unspecifiedValue)
	return ok
}

func (*unspecifiedValue) String() string {
	return ""
}
