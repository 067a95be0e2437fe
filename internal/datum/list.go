// Released under an MIT license. See LICENSE.

package datum

// List builds a proper list from elements, left to right.
func List(elements ...Value) Value {
	if len(elements) == 0 {
		return Null
	}

	start := Cons(elements[0], Null)
	end := start

	for _, e := range elements[1:] {
		next := Cons(e, Null)
		end.cdr = next
		end = next
	}

	return start
}

// Append concatenates a and b. If a is Null, b is returned unchanged; the
// cells of a (but not of b) are copied, so the original a is left
// untouched. a must be a proper list.
func Append(a, b Value) (Value, error) {
	if IsNull(a) {
		return b, nil
	}

	if !IsPair(a) {
		return nil, typeError("append", "list", a)
	}

	p := a.(*Pair)
	start := Cons(p.car, Null)
	end := start

	rest := p.cdr

	for {
		if IsNull(rest) {
			break
		}

		next, ok := rest.(*Pair)
		if !ok {
			return nil, typeError("append", "list", a)
		}

		cell := Cons(next.car, Null)
		end.cdr = cell
		end = cell
		rest = next.cdr
	}

	end.cdr = b

	return start, nil
}

// Length counts the pairs in the proper list list.
func Length(list Value) (int, error) {
	n := 0

	for {
		if IsNull(list) {
			return n, nil
		}

		p, ok := list.(*Pair)
		if !ok {
			return 0, typeError("length", "list", list)
		}

		n++
		list = p.cdr
	}
}

// Slice returns the elements of list as a Go slice, in order.
// It fails with TypeError if list is not a proper list.
func Slice(list Value) ([]Value, error) {
	var out []Value

	for {
		if IsNull(list) {
			return out, nil
		}

		p, ok := list.(*Pair)
		if !ok {
			return nil, typeError("list->slice", "list", list)
		}

		out = append(out, p.car)
		list = p.cdr
	}
}
