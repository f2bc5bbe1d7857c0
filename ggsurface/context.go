// Package ggsurface connects gm.Matrix2d to the gg 2d rendering library.
package ggsurface

import (
	"github.com/gogpu/gg"
	"github.com/oliverbestmann/mat2d/gm"
)

var _ gm.DrawingContext = Context{}

// Context adapts a *gg.Context to a gm.DrawingContext.
type Context struct {
	*gg.Context
}

func (c Context) SetTransform(a, b, cc, d, e, f float64) {
	c.Context.SetTransform(toMatrix(a, b, cc, d, e, f))
}

func (c Context) Transform(a, b, cc, d, e, f float64) {
	c.Context.Transform(toMatrix(a, b, cc, d, e, f))
}

// Matrix returns the current transform of the context.
func (c Context) Matrix() gm.Matrix2d {
	return FromMatrix(c.GetTransform())
}

func toMatrix(a, b, c, d, e, f float64) gg.Matrix {
	return gg.Matrix{
		A: a, B: c, C: e,
		D: b, E: d, F: f,
	}
}

// ToMatrix converts the affine part of m into a gg.Matrix.
func ToMatrix(m *gm.Matrix2d) gg.Matrix {
	return toMatrix(m.ContextParams())
}

// FromMatrix converts a gg.Matrix into a gm.Matrix2d.
func FromMatrix(m gg.Matrix) gm.Matrix2d {
	return gm.FromContextParams(m.A, m.D, m.B, m.E, m.C, m.F)
}
