// Released under an MIT license. See LICENSE.

// Package env provides the VM's lexical environment: a chain of frames
// mapping names to datums, each with a link to its enclosing frame.
package env

import (
	"fmt"

	"github.com/Mortrax/shaka-scheme/internal/datum"
)

// T is one environment frame. The VM is single-threaded and cooperative,
// so — unlike the teacher's hash.T — frames carry no mutex.
type T struct {
	bindings map[string]datum.Value
	parent   *T
}

// New creates the global (parentless) environment frame.
func New() *T {
	return &T{bindings: map[string]datum.Value{}}
}

// child allocates a frame whose parent is e.
func (e *T) child() *T {
	return &T{bindings: map[string]datum.Value{}, parent: e}
}

// Define binds name to v in this frame, shadowing any binding of the
// same name in an enclosing frame.
func (e *T) Define(name string, v datum.Value) {
	e.bindings[name] = v
}

// Get walks the frame chain outward looking for name.
func (e *T) Get(name string) (datum.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.bindings[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Set walks the frame chain outward and mutates the first binding of
// name it finds. It reports false if name is unbound anywhere in the
// chain; it never creates a new binding.
func (e *T) Set(name string, v datum.Value) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.bindings[name]; ok {
			f.bindings[name] = v
			return true
		}
	}

	return false
}

// IsDefined reports whether name is bound anywhere in the frame chain.
func (e *T) IsDefined(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Extend allocates a child frame binding each of params, in order, to
// the corresponding element of args. If variadic is non-nil, it is bound
// to the remaining arguments as a proper list; otherwise len(args) must
// equal len(params) exactly.
func (e *T) Extend(params []*datum.Symbol, variadic *datum.Symbol, args []datum.Value) (datum.Environment, error) {
	if variadic == nil && len(args) != len(params) {
		return nil, fmt.Errorf("extend: expected %d arguments, got %d", len(params), len(args))
	}

	if variadic != nil && len(args) < len(params) {
		return nil, fmt.Errorf("extend: expected at least %d arguments, got %d", len(params), len(args))
	}

	f := e.child()

	for i, p := range params {
		f.bindings[string(*p)] = args[i]
	}

	if variadic != nil {
		tail := datum.Value(datum.Null)
		for i := len(args) - 1; i >= len(params); i-- {
			tail = datum.Cons(args[i], tail)
		}

		f.bindings[string(*variadic)] = tail
	}

	return f, nil
}
