package gm

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInvertible is reported when a matrix with a determinant of zero is inverted.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix2d is a 3x3 homogeneous matrix in row major order describing an affine
// transformation of the plane:
//
//	| m0 m1 m2 |   | a  b  tx |
//	| m3 m4 m5 | = | c  d  ty |
//	| m6 m7 m8 |   | 0  0  1  |
//
// The bottom row is stored and takes part in Multiply, Premultiply and Inverse like
// all other cells. It only stays at (0, 0, 1) as long as every factor has that row.
//
// The zero value is not the identity, use NewMatrix2d to create a Matrix2d.
type Matrix2d struct {
	Cells [9]float64

	// RotateOrigin is the pivot that RotateBy rotates around.
	RotateOrigin Vec

	// ScaleOrigin is carried along with the matrix for callers that keep
	// their scale pivot next to the transform. No operation reads it.
	ScaleOrigin Vec
}

var identityCells = [9]float64{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// NewMatrix2d returns an identity matrix with both origins at (0, 0).
func NewMatrix2d() Matrix2d {
	return Matrix2d{Cells: identityCells}
}

// NewTranslate returns a matrix that translates by (x, y).
func NewTranslate(x, y float64) Matrix2d {
	m := NewMatrix2d()
	m.Cells[2] = x
	m.Cells[5] = y
	return m
}

// NewScale returns a matrix that scales by sx along the x axis and sy along the y axis.
func NewScale(sx, sy float64) Matrix2d {
	m := NewMatrix2d()
	m.Cells[0] = sx
	m.Cells[4] = sy
	return m
}

// NewRotate returns a matrix that rotates around (0, 0) by the given angle.
func NewRotate(angle Rad) Matrix2d {
	m := NewMatrix2d()
	m.RotateTo(angle)
	return m
}

// Identity resets all cells to the identity matrix. The origins are kept.
func (m *Matrix2d) Identity() *Matrix2d {
	m.Cells = identityCells
	return m
}

// CopyFrom copies the cells of other into m.
func (m *Matrix2d) CopyFrom(other *Matrix2d) *Matrix2d {
	m.Cells = other.Cells
	return m
}

// SetRotateOrigin sets the pivot used by RotateBy.
func (m *Matrix2d) SetRotateOrigin(origin Vec) *Matrix2d {
	m.RotateOrigin = origin
	return m
}

// SetScaleOrigin sets ScaleOrigin.
func (m *Matrix2d) SetScaleOrigin(origin Vec) *Matrix2d {
	m.ScaleOrigin = origin
	return m
}

// RotateTo overwrites the four cells of the linear part with a rotation by angle.
// Translation and bottom row stay as they are.
func (m *Matrix2d) RotateTo(angle Rad) *Matrix2d {
	sin, cos := angle.Sincos()

	m.Cells[0] = cos
	m.Cells[1] = -sin
	m.Cells[3] = sin
	m.Cells[4] = cos

	return m
}

// ScaleTo overwrites the two diagonal cells of the linear part. This does not remove
// a rotation that is already encoded in the matrix.
func (m *Matrix2d) ScaleTo(sx, sy float64) *Matrix2d {
	m.Cells[0] = sx
	m.Cells[4] = sy
	return m
}

// TranslateTo overwrites the translation cells.
func (m *Matrix2d) TranslateTo(tx, ty float64) *Matrix2d {
	m.Cells[2] = tx
	m.Cells[5] = ty
	return m
}

// TranslateBy post-multiplies m with a translation by (x, y).
func (m *Matrix2d) TranslateBy(x, y float64) *Matrix2d {
	aux := NewTranslate(x, y)
	return m.Multiply(&aux)
}

// ScaleBy post-multiplies m with a scale by (sx, sy).
func (m *Matrix2d) ScaleBy(sx, sy float64) *Matrix2d {
	aux := NewScale(sx, sy)
	return m.Multiply(&aux)
}

// RotateBy post-multiplies m with a rotation by angle around RotateOrigin.
func (m *Matrix2d) RotateBy(angle Rad) *Matrix2d {
	origin := m.RotateOrigin

	aux := NewMatrix2d()
	aux.TranslateBy(origin.X, origin.Y)
	aux.RotateTo(angle)
	aux.TranslateBy(-origin.X, -origin.Y)

	return m.Multiply(&aux)
}

// Multiply sets m to m · other. When transforming a point with the result,
// other is applied first and m second.
func (m *Matrix2d) Multiply(other *Matrix2d) *Matrix2d {
	m.Cells = mul(&m.Cells, &other.Cells)
	return m
}

// Premultiply sets m to other · m. When transforming a point with the result,
// m is applied first and other second.
func (m *Matrix2d) Premultiply(other *Matrix2d) *Matrix2d {
	m.Cells = mul(&other.Cells, &m.Cells)
	return m
}

func mul(a, b *[9]float64) [9]float64 {
	return [9]float64{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

// MultiplyScalar multiplies every cell with scalar.
func (m *Matrix2d) MultiplyScalar(scalar float64) *Matrix2d {
	for idx := range m.Cells {
		m.Cells[idx] *= scalar
	}

	return m
}

// Determinant returns the determinant of the full 3x3 matrix.
func (m *Matrix2d) Determinant() float64 {
	c := &m.Cells
	return c[0]*(c[4]*c[8]-c[7]*c[5]) -
		c[3]*(c[1]*c[8]-c[7]*c[2]) +
		c[6]*(c[1]*c[5]-c[4]*c[2])
}

// Inverse returns the inverse of m. If the determinant of m is zero, no inverse
// exists and ok is false. m itself is not modified.
func (m *Matrix2d) Inverse() (inverse Matrix2d, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2d{}, false
	}

	c := &m.Cells

	inverse.Cells = [9]float64{
		c[4]*c[8] - c[5]*c[7],
		c[2]*c[7] - c[1]*c[8],
		c[1]*c[5] - c[2]*c[4],

		c[5]*c[6] - c[3]*c[8],
		c[0]*c[8] - c[2]*c[6],
		c[2]*c[3] - c[0]*c[5],

		c[3]*c[7] - c[4]*c[6],
		c[1]*c[6] - c[0]*c[7],
		c[0]*c[4] - c[1]*c[3],
	}

	inverse.MultiplyScalar(1 / det)

	return inverse, true
}

// MustInverse returns the inverse of m.
// This method will panic with ErrNotInvertible if an inverse can not be calculated.
func (m *Matrix2d) MustInverse() Matrix2d {
	inverse, ok := m.Inverse()
	if !ok {
		panic(ErrNotInvertible)
	}

	return inverse
}

// TransformCoord transforms the point in place and returns the same pointer.
// The point is treated as homogeneous coordinate (x, y, 1).
func (m *Matrix2d) TransformCoord(point *Vec) *Vec {
	x, y := point.X, point.Y

	point.X = x*m.Cells[0] + y*m.Cells[1] + m.Cells[2]
	point.Y = x*m.Cells[3] + y*m.Cells[4] + m.Cells[5]

	return point
}

// Transform transforms all points in place, in order, and returns the same slice.
func (m *Matrix2d) Transform(points []Vec) []Vec {
	for idx := range points {
		m.TransformCoord(&points[idx])
	}

	return points
}

// Apply returns the transformed point, leaving the argument untouched.
func (m *Matrix2d) Apply(point Vec) Vec {
	return *m.TransformCoord(&point)
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component.
// The vector will only be rotated and scaled.
func (m *Matrix2d) TransformVec(vec Vec) Vec {
	return Vec{
		X: vec.X*m.Cells[0] + vec.Y*m.Cells[1],
		Y: vec.X*m.Cells[3] + vec.Y*m.Cells[4],
	}
}

// TransformRect returns the axis aligned bounding box of the transformed corners of r.
func (m *Matrix2d) TransformRect(r Rect) Rect {
	corners := []Vec{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}
	m.Transform(corners)
	return RectWithPoints(corners...)
}

// IsIdentity returns true if all cells equal the identity matrix exactly.
func (m *Matrix2d) IsIdentity() bool {
	return m.Cells == identityCells
}

// ApproxEqual returns true if all cells differ by at most epsilon.
func (m *Matrix2d) ApproxEqual(other *Matrix2d, epsilon float64) bool {
	for idx := range m.Cells {
		if !(math.Abs(m.Cells[idx]-other.Cells[idx]) <= epsilon) {
			return false
		}
	}

	return true
}

func (m Matrix2d) String() string {
	c := m.Cells
	return fmt.Sprintf("Matrix2d[%v %v %v; %v %v %v; %v %v %v]",
		c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7], c[8])
}
