// Package surface contains a headless gm.DrawingContext that keeps track of its
// current transform the same way a canvas does.
package surface

import (
	"fmt"

	"github.com/oliverbestmann/mat2d/gm"
)

var _ gm.DrawingContext = (*Recorder)(nil)

type CallKind uint8

const (
	CallSetTransform CallKind = iota
	CallTransform
)

func (k CallKind) String() string {
	switch k {
	case CallSetTransform:
		return "SetTransform"
	case CallTransform:
		return "Transform"
	default:
		return fmt.Sprintf("CallKind(%d)", uint8(k))
	}
}

// Call is a single transform call received by a Recorder.
type Call struct {
	Kind             CallKind
	A, B, C, D, E, F float64
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%v, %v, %v, %v, %v, %v)", c.Kind, c.A, c.B, c.C, c.D, c.E, c.F)
}

// Recorder records all transform calls and tracks the resulting transform.
// Use NewRecorder to create a Recorder with an identity transform.
type Recorder struct {
	current gm.Matrix2d
	calls   []Call
}

func NewRecorder() *Recorder {
	return &Recorder{current: gm.NewMatrix2d()}
}

func (r *Recorder) SetTransform(a, b, c, d, e, f float64) {
	r.calls = append(r.calls, Call{Kind: CallSetTransform, A: a, B: b, C: c, D: d, E: e, F: f})
	r.current = gm.FromContextParams(a, b, c, d, e, f)
}

func (r *Recorder) Transform(a, b, c, d, e, f float64) {
	r.calls = append(r.calls, Call{Kind: CallTransform, A: a, B: b, C: c, D: d, E: e, F: f})

	m := gm.FromContextParams(a, b, c, d, e, f)
	r.current.Multiply(&m)
}

// Current returns a copy of the current transform.
func (r *Recorder) Current() gm.Matrix2d {
	return r.current
}

// Calls returns all calls received since the last Reset.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Reset clears the call log and resets the transform to identity.
func (r *Recorder) Reset() {
	r.current.Identity()
	r.calls = r.calls[:0]
}
