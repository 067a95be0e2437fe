// Released under an MIT license. See LICENSE.

package vm

import (
	"context"
	"testing"

	"github.com/Mortrax/shaka-scheme/internal/datum"
	"github.com/Mortrax/shaka-scheme/internal/env"
)

func sym(s string) *datum.Symbol { return datum.NewSymbol(s) }

func inst(elements ...datum.Value) datum.Value {
	return datum.List(elements...)
}

func TestHalt(t *testing.T) {
	m := New(inst(sym("constant"), datum.NumberFromInt(42), inst(sym("halt"))), env.New())

	v, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !v.Equal(datum.NumberFromInt(42)) {
		t.Fatalf("Acc = %v, want 42", v)
	}
}

func TestReferUnbound(t *testing.T) {
	m := New(inst(sym("refer"), sym("x"), inst(sym("halt"))), env.New())

	_, err := m.Run(context.Background())

	if _, ok := err.(*UnboundVariable); !ok {
		t.Fatalf("err = %v, want *UnboundVariable", err)
	}
}

func TestAssignAndRefer(t *testing.T) {
	e := env.New()
	e.Define("x", datum.NumberFromInt(0))

	prog := inst(sym("constant"), datum.NumberFromInt(7),
		inst(sym("assign"), sym("x"),
			inst(sym("refer"), sym("x"),
				inst(sym("halt")))))

	m := New(prog, e)

	v, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !v.Equal(datum.NumberFromInt(7)) {
		t.Fatalf("Acc = %v, want 7", v)
	}
}

func TestTestInstruction(t *testing.T) {
	// (test (constant 'yes (halt)) (constant 'no (halt))), with acc
	// primed to #f, must take the else branch.
	e := env.New()

	prog := inst(sym("constant"), datum.False,
		inst(sym("test"),
			inst(sym("constant"), sym("yes"), inst(sym("halt"))),
			inst(sym("constant"), sym("no"), inst(sym("halt")))))

	m := New(prog, e)

	v, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !v.Equal(sym("no")) {
		t.Fatalf("Acc = %v, want no", v)
	}
}

func TestTestTreatsEmptyListAsTrue(t *testing.T) {
	e := env.New()

	prog := inst(sym("constant"), datum.Null,
		inst(sym("test"),
			inst(sym("constant"), sym("yes"), inst(sym("halt"))),
			inst(sym("constant"), sym("no"), inst(sym("halt")))))

	m := New(prog, e)

	v, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !v.Equal(sym("yes")) {
		t.Fatalf("Acc = %v, want yes (Null is truthy)", v)
	}
}

// TestApplyIdentity builds ((lambda (x) x) 5) by hand at the instruction
// level: frame/close/constant/argument/apply/return.
func TestApplyIdentity(t *testing.T) {
	e := env.New()

	retInst := inst(sym("return"))

	body := inst(sym("refer"), sym("x"), retInst)

	closeInst := inst(sym("close"), inst(sym("x")), body, inst(sym("apply")))

	// Evaluate the argument first and push it, then evaluate the
	// operator into acc, then apply — the rib must hold 5 when apply
	// runs, not the not-yet-built closure.
	prog := inst(sym("frame"), inst(sym("halt")),
		inst(sym("constant"), datum.NumberFromInt(5),
			inst(sym("argument"), closeInst)))

	m := New(prog, e)

	v, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !v.Equal(datum.NumberFromInt(5)) {
		t.Fatalf("Acc = %v, want 5", v)
	}
}

func TestApplyArityError(t *testing.T) {
	e := env.New()

	body := inst(sym("return"))
	closeInst := inst(sym("close"), inst(sym("x")), body, inst(sym("apply")))

	prog := inst(sym("frame"), inst(sym("halt")), closeInst)

	m := New(prog, e)

	_, err := m.Run(context.Background())
	if _, ok := err.(*ArityError); !ok {
		t.Fatalf("err = %v, want *ArityError", err)
	}
}

func TestApplyNotApplicable(t *testing.T) {
	e := env.New()

	prog := inst(sym("constant"), datum.NumberFromInt(1), inst(sym("apply")))

	m := New(prog, e)

	_, err := m.Run(context.Background())
	if _, ok := err.(*NotApplicable); !ok {
		t.Fatalf("err = %v, want *NotApplicable", err)
	}
}

func TestBadInstruction(t *testing.T) {
	m := New(inst(sym("frobnicate")), env.New())

	_, err := m.Run(context.Background())
	if _, ok := err.(*BadInstruction); !ok {
		t.Fatalf("err = %v, want *BadInstruction", err)
	}
}

// TestConti verifies that invoking a captured continuation re-enters the
// call site and that the accumulator ends up holding the value passed
// to the continuation, not the value the call site originally produced.
func TestConti(t *testing.T) {
	e := env.New()
	e.Define("k", datum.Unspecified)

	// frame (halt)
	//   conti: capture the halt frame as k, then immediately call
	//   (k 99) — the continuation's value, not this call's, must win.
	prog := inst(sym("frame"), inst(sym("halt")),
		inst(sym("conti"),
			inst(sym("assign"), sym("k"),
				inst(sym("constant"), datum.NumberFromInt(99),
					inst(sym("argument"),
						inst(sym("refer"), sym("k"),
							inst(sym("apply"))))))))

	m := New(prog, e)

	v, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !v.Equal(datum.NumberFromInt(99)) {
		t.Fatalf("Acc = %v, want 99", v)
	}
}

// TestRunHonorsCancellation verifies that Run checks ctx before running
// a single step, so a host can abort a program (e.g. an accidental
// infinite loop) between steps without touching the VM's registers.
func TestRunHonorsCancellation(t *testing.T) {
	e := env.New()

	prog := inst(sym("constant"), datum.NumberFromInt(1), inst(sym("halt")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(prog, e)

	_, err := m.Run(ctx)
	if err != context.Canceled { //nolint:errorlint
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
