// Released under an MIT license. See LICENSE.

package datum

import "testing"

func TestSymbolInterning(t *testing.T) {
	a := NewSymbol("foo")
	b := NewSymbol("foo")

	if a != b {
		t.Fatalf("expected short symbols to be interned, got distinct pointers")
	}
}

func TestCarAndCdrOfNullFail(t *testing.T) {
	if _, err := Car(Null); !isTypeError(err) {
		t.Fatalf("Car(Null): err = %v, want *TypeError", err)
	}

	if _, err := Cdr(Null); !isTypeError(err) {
		t.Fatalf("Cdr(Null): err = %v, want *TypeError", err)
	}
}

func isTypeError(err error) bool {
	_, ok := err.(*TypeError) //nolint:errorlint
	return ok
}

func TestPairEqual(t *testing.T) {
	a := List(NumberFromInt(1), NumberFromInt(2))
	b := List(NumberFromInt(1), NumberFromInt(2))

	if !a.Equal(b) {
		t.Fatalf("expected structurally equal lists to be Equal")
	}
}

func TestImproperListString(t *testing.T) {
	p := Cons(NumberFromInt(1), Cons(NumberFromInt(2), NumberFromInt(3)))

	want := "(1 2 . 3)"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAppend(t *testing.T) {
	a := List(NumberFromInt(1), NumberFromInt(2))
	b := List(NumberFromInt(3))

	got, err := Append(a, b)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	want := "(1 2 3)"
	if got.String() != want {
		t.Fatalf("Append = %q, want %q", got.String(), want)
	}

	// a's own cells must not be shared with the result.
	if err := SetCar(a, NumberFromInt(99)); err != nil {
		t.Fatalf("SetCar: %v", err)
	}

	if got.String() != want {
		t.Fatalf("mutating a changed the appended result: %q", got.String())
	}
}

func TestBooleanTruth(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"false", False, false},
		{"true", True, true},
		{"zero", NumberFromInt(0), true},
		{"null", Null, true},
		{"empty string", NewString(""), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.Bool(); got != c.want {
				t.Fatalf("Bool() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNumberRational(t *testing.T) {
	n, ok := NewNumber("1/3")
	if !ok {
		t.Fatalf("NewNumber(1/3) failed to parse")
	}

	if got, want := n.String(), "1/3"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestBytevectorRangeCheck(t *testing.T) {
	if _, err := NewBytevector([]int{0, 255, 256}); err == nil {
		t.Fatalf("expected TypeError for out-of-range byte")
	}

	bv, err := NewBytevector([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("NewBytevector: %v", err)
	}

	if bv.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", bv.Len())
	}
}
