// Released under an MIT license. See LICENSE.

package vm

import "github.com/Mortrax/shaka-scheme/internal/datum"

// Each op below corresponds to one row of the instruction table: it reads
// its operands, mutates the machine's registers, and — except for halt —
// leaves Expr pointing at the next instruction to run.

func doHalt(m *Machine, _ []datum.Value) (bool, error) {
	return true, nil
}

// refer var x
func doRefer(m *Machine, ops []datum.Value) (bool, error) {
	name := symbolName(ops[0])

	v, ok := m.Env.Get(name)
	if !ok {
		return false, &UnboundVariable{Name: name}
	}

	m.Acc = v
	m.Expr = ops[1]

	return false, nil
}

// constant obj x
func doConstant(m *Machine, ops []datum.Value) (bool, error) {
	m.Acc = ops[0]
	m.Expr = ops[1]

	return false, nil
}

// close vars body x
func doClose(m *Machine, ops []datum.Value) (bool, error) {
	params, variadic, err := parseParamList(ops[0])
	if err != nil {
		return false, err
	}

	m.Acc = datum.NewClosure(m.Env, params, variadic, ops[1])
	m.Expr = ops[2]

	return false, nil
}

// test then else
func doTest(m *Machine, ops []datum.Value) (bool, error) {
	if isFalse(m.Acc) {
		m.Expr = ops[1]
	} else {
		m.Expr = ops[0]
	}

	return false, nil
}

// assign var x
func doAssign(m *Machine, ops []datum.Value) (bool, error) {
	name := symbolName(ops[0])

	if !m.Env.Set(name, m.Acc) {
		return false, &UnboundVariable{Name: name}
	}

	m.Expr = ops[1]

	return false, nil
}

// conti x
func doConti(m *Machine, ops []datum.Value) (bool, error) {
	frame := m.Frame

	v := datum.NewSymbol("v")
	body := datum.List(datum.NewSymbol("nuate"), frameDatum(frame), v)

	m.Acc = datum.NewClosure(m.Env, []*datum.Symbol{v}, nil, body)
	m.Expr = ops[0]

	return false, nil
}

// nuate s var
func doNuate(m *Machine, ops []datum.Value) (bool, error) {
	frame, ok := ops[0].(*frameRef)
	if !ok {
		return false, &BadInstruction{Head: "nuate: not a captured frame"}
	}

	name := symbolName(ops[1])

	v, ok := m.Env.Get(name)
	if !ok {
		return false, &UnboundVariable{Name: name}
	}

	m.Frame = frame.frame
	m.Acc = v
	m.Expr = datum.List(datum.NewSymbol("return"))

	return false, nil
}

// frame ret x
func doFrame(m *Machine, ops []datum.Value) (bool, error) {
	m.Frame = &CallFrame{Ret: ops[0], Env: m.Env, Rib: m.Rib, Next: m.Frame}
	m.Rib = nil
	m.Expr = ops[1]

	return false, nil
}

// argument x
func doArgument(m *Machine, ops []datum.Value) (bool, error) {
	m.Rib = append(m.Rib, m.Acc)
	m.Expr = ops[0]

	return false, nil
}

// apply
func doApply(m *Machine, _ []datum.Value) (bool, error) {
	closure, ok := m.Acc.(*datum.Closure)
	if !ok {
		return false, &NotApplicable{Value: m.Acc}
	}

	if err := checkArity(closure, len(m.Rib)); err != nil {
		return false, err
	}

	env, err := closure.Env.Extend(closure.Params, closure.Variadic, m.Rib)
	if err != nil {
		return false, err
	}

	m.Env = env
	m.Expr = closure.Body
	m.Rib = nil

	return false, nil
}

// return
func doReturn(m *Machine, _ []datum.Value) (bool, error) {
	if m.Frame == nil {
		return true, nil
	}

	m.Expr = m.Frame.Ret
	m.Env = m.Frame.Env
	m.Rib = m.Frame.Rib
	m.Frame = m.Frame.Next

	return false, nil
}

func isFalse(v datum.Value) bool {
	b, ok := v.(*datum.Boolean)
	return ok && !bool(*b)
}

func symbolName(v datum.Value) string {
	if s, ok := v.(*datum.Symbol); ok {
		return string(*s)
	}

	return v.String()
}

// parseParamList splits a close instruction's parameter-list operand
// into fixed parameters and, when the list is improper, the variadic
// tail parameter.
func parseParamList(v datum.Value) ([]*datum.Symbol, *datum.Symbol, error) {
	var params []*datum.Symbol

	for {
		if datum.IsNull(v) {
			return params, nil, nil
		}

		if s, ok := v.(*datum.Symbol); ok {
			return params, s, nil
		}

		p, ok := v.(*datum.Pair)
		if !ok {
			return nil, nil, &BadInstruction{Head: "close: malformed parameter list"}
		}

		car, _ := datum.Car(p)

		s, ok := car.(*datum.Symbol)
		if !ok {
			return nil, nil, &BadInstruction{Head: "close: parameter is not a symbol"}
		}

		params = append(params, s)

		cdr, _ := datum.Cdr(p)
		v = cdr
	}
}

func checkArity(c *datum.Closure, got int) error {
	if c.Variadic == nil && got != len(c.Params) {
		return &ArityError{Expected: len(c.Params), Got: got}
	}

	if c.Variadic != nil && got < len(c.Params) {
		return &ArityError{Expected: len(c.Params), Got: got, Variadic: true}
	}

	return nil
}
