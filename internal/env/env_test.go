// Released under an MIT license. See LICENSE.

package env

import (
	"testing"

	"github.com/Mortrax/shaka-scheme/internal/datum"
)

func TestDefineAndGet(t *testing.T) {
	e := New()
	e.Define("x", datum.NumberFromInt(42))

	v, ok := e.Get("x")
	if !ok {
		t.Fatalf("expected x to be defined")
	}

	if !v.Equal(datum.NumberFromInt(42)) {
		t.Fatalf("Get(x) = %v, want 42", v)
	}
}

func TestSetWalksParentChain(t *testing.T) {
	parent := New()
	parent.Define("x", datum.NumberFromInt(1))

	child, err := parent.Extend(nil, nil, nil)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	if !child.Set("x", datum.NumberFromInt(2)) {
		t.Fatalf("Set(x) on child should find x in the parent frame")
	}

	v, _ := parent.Get("x")
	if !v.Equal(datum.NumberFromInt(2)) {
		t.Fatalf("parent's x was not mutated, got %v", v)
	}
}

func TestSetUnboundFails(t *testing.T) {
	e := New()
	if e.Set("nope", datum.NumberFromInt(1)) {
		t.Fatalf("Set on an unbound name should report false")
	}
}

func TestExtendVariadic(t *testing.T) {
	e := New()

	a := datum.NewSymbol("a")
	rest := datum.NewSymbol("rest")

	child, err := e.Extend([]*datum.Symbol{a}, rest, []datum.Value{
		datum.NumberFromInt(1), datum.NumberFromInt(2), datum.NumberFromInt(3),
	})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	restVal, ok := child.Get("rest")
	if !ok {
		t.Fatalf("expected rest to be bound")
	}

	if got, want := restVal.String(), "(2 3)"; got != want {
		t.Fatalf("rest = %q, want %q", got, want)
	}
}

func TestExtendArityMismatch(t *testing.T) {
	e := New()

	a := datum.NewSymbol("a")

	if _, err := e.Extend([]*datum.Symbol{a}, nil, nil); err == nil {
		t.Fatalf("expected an arity error")
	}
}
