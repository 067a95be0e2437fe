// Released under an MIT license. See LICENSE.

package vm

import (
	"fmt"

	"github.com/Mortrax/shaka-scheme/internal/datum"
)

// UnboundVariable reports a refer or assign against a name with no
// binding in the current environment chain.
type UnboundVariable struct {
	Name string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// NotApplicable reports an apply whose accumulator is not a Closure.
type NotApplicable struct {
	Value datum.Value
}

func (e *NotApplicable) Error() string {
	return fmt.Sprintf("not applicable: %s", e.Value)
}

// BadInstruction reports an expression register whose head is not one
// of the instructions the VM recognizes.
type BadInstruction struct {
	Head string
}

func (e *BadInstruction) Error() string {
	return fmt.Sprintf("bad instruction: %s", e.Head)
}

// ArityError reports a closure application with the wrong number of
// arguments.
type ArityError struct {
	Expected int
	Got      int
	Variadic bool
}

func (e *ArityError) Error() string {
	if e.Variadic {
		return fmt.Sprintf("arity error: expected at least %d arguments, got %d", e.Expected, e.Got)
	}

	return fmt.Sprintf("arity error: expected %d arguments, got %d", e.Expected, e.Got)
}
