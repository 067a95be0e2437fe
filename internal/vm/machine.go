// Released under an MIT license. See LICENSE.

// Package vm implements the Dybvig-style heap-based register machine:
// five registers (accumulator, expression, env, rib, frame) stepped
// forward by a small, explicitly-continuation-passing instruction set.
// The instruction dispatch mirrors shaka_scheme's
// HeapVirtualMachine::evaluate_assembly_instruction, and the step/driver
// split follows the teacher's secd package's Action/State shape.
package vm

import (
	"context"

	"github.com/Mortrax/shaka-scheme/internal/datum"
	"github.com/Mortrax/shaka-scheme/internal/report"
)

// CallFrame is a saved return context: where to resume (Ret), which
// environment and argument rib were active at the call site, and the
// caller's own frame. Frames are heap objects — conti captures one by
// strong reference so a continuation can re-enter a control context
// after its original owner has already returned.
type CallFrame struct {
	Ret  datum.Value
	Env  datum.Environment
	Rib  []datum.Value
	Next *CallFrame
}

// Machine holds the VM's five registers and runs instruction datums.
type Machine struct {
	Acc   datum.Value
	Expr  datum.Value
	Env   datum.Environment
	Rib   []datum.Value
	Frame *CallFrame

	log *report.Logger
}

// New creates a Machine that will begin execution at expr, in env.
func New(expr datum.Value, env datum.Environment) *Machine {
	return &Machine{
		Acc:  datum.Unspecified,
		Expr: expr,
		Env:  env,
		log:  report.Named("vm"),
	}
}

// action is one instruction's effect on the machine. It reports true
// when the machine should halt, or an error if the instruction failed.
type action func(m *Machine, operands []datum.Value) (halt bool, err error)

//nolint:gochecknoglobals
var dispatch = map[string]action{
	"halt":     doHalt,
	"refer":    doRefer,
	"constant": doConstant,
	"close":    doClose,
	"test":     doTest,
	"assign":   doAssign,
	"conti":    doConti,
	"nuate":    doNuate,
	"frame":    doFrame,
	"argument": doArgument,
	"apply":    doApply,
	"return":   doReturn,
}

// Run steps the machine until it halts, an instruction fails, or ctx is
// canceled, then returns the accumulator's final value. There are no
// suspension points inside one Step, so cancellation is only checked
// between steps — a host wires ctx to an external signal (e.g. SIGINT)
// to abort a runaway program without ever touching the VM's registers
// from another goroutine.
func (m *Machine) Run(ctx context.Context) (datum.Value, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		halted, err := m.Step()
		if err != nil {
			return nil, err
		}

		if halted {
			return m.Acc, nil
		}
	}
}

// Step executes one instruction, the expression register's current head
// and operands, and advances the registers accordingly.
func (m *Machine) Step() (halt bool, err error) {
	head, operands, err := decode(m.Expr)
	if err != nil {
		return false, err
	}

	op, ok := dispatch[head]
	if !ok {
		return false, &BadInstruction{Head: head}
	}

	m.log.Debugf("%s acc=%s", head, m.Acc)

	return op(m, operands)
}

// decode splits an instruction datum (opcode . operands) into its head
// symbol and operand list.
func decode(expr datum.Value) (string, []datum.Value, error) {
	if datum.IsNull(expr) {
		return "", nil, &BadInstruction{Head: "()"}
	}

	head, err := datum.Car(expr)
	if err != nil {
		return "", nil, &BadInstruction{Head: expr.String()}
	}

	sym, ok := head.(*datum.Symbol)
	if !ok {
		return "", nil, &BadInstruction{Head: head.String()}
	}

	rest, err := datum.Cdr(expr)
	if err != nil {
		return "", nil, &BadInstruction{Head: expr.String()}
	}

	operands, err := datum.Slice(rest)
	if err != nil {
		return "", nil, &BadInstruction{Head: expr.String()}
	}

	return string(*sym), operands, nil
}
