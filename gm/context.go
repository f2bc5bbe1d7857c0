package gm

// DrawingContext is a 2d drawing surface that accepts a transform in the canvas
// convention with six parameters, mapping a point to
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type DrawingContext interface {
	// SetTransform replaces the current transform of the surface.
	SetTransform(a, b, c, d, e, f float64)

	// Transform multiplies the current transform of the surface with the given
	// one, so that the given transform is applied to points first.
	Transform(a, b, c, d, e, f float64)
}

// ContextParams returns the affine cells of m in the order expected
// by a DrawingContext.
func (m *Matrix2d) ContextParams() (a, b, c, d, e, f float64) {
	return m.Cells[0], m.Cells[3], m.Cells[1], m.Cells[4], m.Cells[2], m.Cells[5]
}

// FromContextParams builds a matrix from the six canvas transform parameters.
func FromContextParams(a, b, c, d, e, f float64) Matrix2d {
	m := NewMatrix2d()
	m.Cells[0], m.Cells[1], m.Cells[2] = a, c, e
	m.Cells[3], m.Cells[4], m.Cells[5] = b, d, f
	return m
}

// SetContextTransform replaces the transform of ctx with m.
func (m *Matrix2d) SetContextTransform(ctx DrawingContext) *Matrix2d {
	ctx.SetTransform(m.ContextParams())
	return m
}

// ApplyToContext composes m with the current transform of ctx.
func (m *Matrix2d) ApplyToContext(ctx DrawingContext) *Matrix2d {
	ctx.Transform(m.ContextParams())
	return m
}
