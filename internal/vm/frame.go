// Released under an MIT license. See LICENSE.

package vm

import "github.com/Mortrax/shaka-scheme/internal/datum"

// frameRef carries a captured CallFrame as an opaque datum so conti can
// embed it in the synthesized (nuate <frame> v) instruction list it
// builds for a continuation's body.
type frameRef struct {
	frame *CallFrame
}

func frameDatum(f *CallFrame) datum.Value {
	return &frameRef{frame: f}
}

func (*frameRef) Bool() bool { return true }

func (r *frameRef) Equal(v datum.Value) bool {
	o, ok := v.(*frameRef)
	return ok && r.frame == o.frame
}

func (*frameRef) String() string {
	return "#<captured-frame>"
}
