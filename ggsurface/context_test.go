package ggsurface

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/oliverbestmann/mat2d/gm"
	"github.com/stretchr/testify/require"
)

func TestToMatrix(t *testing.T) {
	m := gm.NewTranslate(3, 4)
	m.RotateBy(math.Pi / 6).ScaleBy(2, 0.5)

	g := ToMatrix(&m)

	p := gm.Vec{X: 5, Y: -2}
	expected := m.Apply(p)
	actual := g.TransformPoint(gg.Pt(p.X, p.Y))

	require.InDelta(t, expected.X, actual.X, 1e-9)
	require.InDelta(t, expected.Y, actual.Y, 1e-9)

	back := FromMatrix(g)
	require.True(t, back.ApproxEqual(&m, 1e-12))
}

func TestContext(t *testing.T) {
	dc := gg.NewContext(64, 64)
	defer func() { _ = dc.Close() }()

	ctx := Context{Context: dc}

	parent := gm.NewTranslate(32, 32)
	child := gm.NewScale(2, 2)

	parent.SetContextTransform(ctx)
	child.ApplyToContext(ctx)

	x, y := dc.TransformPoint(1, 1)
	require.InDelta(t, 34, x, 1e-9)
	require.InDelta(t, 34, y, 1e-9)

	expected := parent
	expected.Multiply(&child)

	actual := ctx.Matrix()
	require.True(t, actual.ApproxEqual(&expected, 1e-12))

	// SetTransform replaces the composed transform
	child.SetContextTransform(ctx)
	actual = ctx.Matrix()
	require.True(t, actual.ApproxEqual(&child, 1e-12))
}
