package surface

import (
	"math"
	"testing"

	"github.com/oliverbestmann/mat2d/gm"
	"github.com/stretchr/testify/require"
)

func TestRecorder_SetTransform(t *testing.T) {
	r := NewRecorder()
	current := r.Current()
	require.True(t, current.IsIdentity())

	m := gm.NewTranslate(4, 2)
	m.RotateBy(math.Pi / 3)
	m.SetContextTransform(r)

	current = r.Current()
	require.True(t, current.ApproxEqual(&m, 1e-12))
	require.Equal(t, []Call{{Kind: CallSetTransform, A: m.Cells[0], B: m.Cells[3], C: m.Cells[1], D: m.Cells[4], E: 4, F: 2}}, r.Calls())

	// replaces instead of composing
	m.SetContextTransform(r)
	current = r.Current()
	require.True(t, current.ApproxEqual(&m, 1e-12))
}

func TestRecorder_Transform(t *testing.T) {
	r := NewRecorder()

	parent := gm.NewTranslate(10, 0)
	child := gm.NewScale(2, 2)

	parent.SetContextTransform(r)
	child.ApplyToContext(r)

	// the surface post-multiplies: child is applied to points first
	expected := parent
	expected.Multiply(&child)

	current := r.Current()
	require.True(t, current.ApproxEqual(&expected, 1e-12))
	require.Equal(t, gm.Vec{X: 12, Y: 2}, current.Apply(gm.VecOne))

	require.Len(t, r.Calls(), 2)
	require.Equal(t, CallTransform, r.Calls()[1].Kind)
	require.Equal(t, "Transform(2, 0, 0, 2, 0, 0)", r.Calls()[1].String())

	r.Reset()
	require.Empty(t, r.Calls())

	current = r.Current()
	require.True(t, current.IsIdentity())
}
