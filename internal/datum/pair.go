// Released under an MIT license. See LICENSE.

package datum

// Pair is a cons cell, the spine of every Scheme list.
type Pair struct {
	car Value
	cdr Value
}

//nolint:gochecknoglobals
var nullPair = &Pair{}

// Null is the empty list. Its internal car and cdr point back at itself,
// the same self-referential sentinel the teacher's cell package uses.
// Null is not a pair, though: Car, Cdr, SetCar, and SetCdr reject it
// with TypeError.
var Null Value = nullPair

func init() { //nolint:gochecknoinits
	nullPair.car = Null
	nullPair.cdr = Null
}

// Cons allocates a new Pair with the given car and cdr.
func Cons(car, cdr Value) *Pair {
	return &Pair{car: car, cdr: cdr}
}

// Bool reports that every pair, including Null, is true.
func (p *Pair) Bool() bool { return true }

// Equal reports whether v is a Pair with structurally equal elements.
func (p *Pair) Equal(v Value) bool {
	if p == nullPair {
		return v == Null
	}

	o, ok := v.(*Pair)

	return ok && p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// String returns the list or dotted-pair external representation.
func (p *Pair) String() string {
	if p == nullPair {
		return "()"
	}

	var b []byte
	b = append(b, '(')
	b = append(b, p.car.String()...)

	rest := p.cdr
	for {
		if rest == Null {
			break
		}

		next, ok := rest.(*Pair)
		if !ok {
			b = append(b, " . "...)
			b = append(b, rest.String()...)

			break
		}

		b = append(b, ' ')
		b = append(b, next.car.String()...)
		rest = next.cdr
	}

	b = append(b, ')')

	return string(b)
}

// IsPair reports whether v is a Pair other than Null.
func IsPair(v Value) bool {
	p, ok := v.(*Pair)
	return ok && p != nullPair
}

// IsNull reports whether v is the empty list.
func IsNull(v Value) bool {
	return v == Null
}

// Car returns the car of c. c must be a pair; TypeError otherwise.
func Car(c Value) (Value, error) {
	p, ok := c.(*Pair)
	if !ok || p == nullPair {
		return nil, typeError("car", "pair", c)
	}

	return p.car, nil
}

// Cdr returns the cdr of c. c must be a pair; TypeError otherwise.
func Cdr(c Value) (Value, error) {
	p, ok := c.(*Pair)
	if !ok || p == nullPair {
		return nil, typeError("cdr", "pair", c)
	}

	return p.cdr, nil
}

// SetCar destructively sets the car of c.
func SetCar(c Value, v Value) error {
	p, ok := c.(*Pair)
	if !ok || p == nullPair {
		return typeError("set-car!", "pair", c)
	}

	p.car = v

	return nil
}

// SetCdr destructively sets the cdr of c.
func SetCdr(c Value, v Value) error {
	p, ok := c.(*Pair)
	if !ok || p == nullPair {
		return typeError("set-cdr!", "pair", c)
	}

	p.cdr = v

	return nil
}
