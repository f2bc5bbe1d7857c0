// Package physics converts between gm.Matrix2d and the transforms of the
// chipmunk physics engine.
package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/mat2d/gm"
)

// ToTransform converts the affine part of m into a cp.Transform.
func ToTransform(m *gm.Matrix2d) cp.Transform {
	c := &m.Cells
	return cp.NewTransformTranspose(
		c[0], c[1], c[2],
		c[3], c[4], c[5],
	)
}

// FromTransform converts a cp.Transform into a matrix. The cells of a cp.Transform
// are not exported, they are recovered by transforming the basis vectors.
func FromTransform(t cp.Transform) gm.Matrix2d {
	origin := t.Point(cp.Vector{})
	xAxis := t.Vect(cp.Vector{X: 1})
	yAxis := t.Vect(cp.Vector{Y: 1})

	return gm.FromContextParams(
		xAxis.X, xAxis.Y,
		yAxis.X, yAxis.Y,
		origin.X, origin.Y,
	)
}

// BodyMatrix returns the local to world matrix of a rigid body.
// The body rotates around its local origin.
func BodyMatrix(body *cp.Body) gm.Matrix2d {
	pos := body.Position()

	m := gm.NewTranslate(pos.X, pos.Y)
	m.RotateBy(gm.Rad(body.Angle()))
	return m
}

func toVec(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}

// LocalToWorld transforms a point in the local space of the body into world space.
func LocalToWorld(body *cp.Body, local gm.Vec) gm.Vec {
	m := BodyMatrix(body)
	return m.Apply(local)
}

// WorldToLocal transforms a world point into the local space of the body.
func WorldToLocal(body *cp.Body, world gm.Vec) gm.Vec {
	m := BodyMatrix(body)

	// a rigid transform is always invertible
	inverse := m.MustInverse()
	return inverse.Apply(world)
}

// ShapeBounds returns the bounding box of a shape in world space.
func ShapeBounds(shape *cp.Shape) gm.Rect {
	bb := shape.BB()
	return gm.RectWithPoints(toVec(cp.Vector{X: bb.L, Y: bb.B}), toVec(cp.Vector{X: bb.R, Y: bb.T}))
}
