// Package ebitensurface connects gm.Matrix2d to ebiten.
package ebitensurface

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/mat2d/gm"
)

var _ gm.DrawingContext = GeoM{}

// GeoM adapts an ebiten.GeoM to a gm.DrawingContext. The wrapped GeoM is
// updated in place, so it can be used directly in ebiten.DrawImageOptions.
type GeoM struct {
	G *ebiten.GeoM
}

func (g GeoM) SetTransform(a, b, c, d, e, f float64) {
	g.G.SetElement(0, 0, a)
	g.G.SetElement(0, 1, c)
	g.G.SetElement(0, 2, e)
	g.G.SetElement(1, 0, b)
	g.G.SetElement(1, 1, d)
	g.G.SetElement(1, 2, f)
}

func (g GeoM) Transform(a, b, c, d, e, f float64) {
	var local ebiten.GeoM
	GeoM{G: &local}.SetTransform(a, b, c, d, e, f)

	// Concat applies the receiver first, so local is applied
	// to points before the current transform.
	local.Concat(*g.G)
	*g.G = local
}

// ToGeoM converts the affine part of m into an ebiten.GeoM.
func ToGeoM(m *gm.Matrix2d) ebiten.GeoM {
	var g ebiten.GeoM
	m.SetContextTransform(GeoM{G: &g})
	return g
}

// FromGeoM converts an ebiten.GeoM into a matrix.
func FromGeoM(g ebiten.GeoM) gm.Matrix2d {
	return gm.FromContextParams(
		g.Element(0, 0), g.Element(1, 0),
		g.Element(0, 1), g.Element(1, 1),
		g.Element(0, 2), g.Element(1, 2),
	)
}

// DrawImageOptions composes the GeoM of op with m, m being applied last. If op is nil,
// default options are created. The returned options are op itself.
func DrawImageOptions(m *gm.Matrix2d, op *ebiten.DrawImageOptions) *ebiten.DrawImageOptions {
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}

	op.GeoM.Concat(ToGeoM(m))
	return op
}

// DrawImage draws src onto dst with the transform m, see DrawImageOptions.
func DrawImage(dst, src *ebiten.Image, m *gm.Matrix2d, op *ebiten.DrawImageOptions) {
	dst.DrawImage(src, DrawImageOptions(m, op))
}
