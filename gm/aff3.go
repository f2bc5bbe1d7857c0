package gm

import "golang.org/x/image/math/f64"

// Aff3 returns the affine part of m as an f64.Aff3, as used by
// golang.org/x/image/draw. The bottom row is dropped.
func (m *Matrix2d) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.Cells[0], m.Cells[1], m.Cells[2],
		m.Cells[3], m.Cells[4], m.Cells[5],
	}
}

// FromAff3 builds a matrix from an f64.Aff3 with an implicit bottom row of (0, 0, 1).
func FromAff3(aff f64.Aff3) Matrix2d {
	m := NewMatrix2d()
	copy(m.Cells[:6], aff[:])
	return m
}
