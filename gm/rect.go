package gm

import (
	"fmt"
	"image"
	"math"
)

type Rect struct {
	Min, Max Vec
}

// RectWithPoints returns the smallest rectangle containing all given points.
// Without any points, the zero Rect is returned.
func RectWithPoints(points ...Vec) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{
		Min: Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}

	for _, p := range points {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}

	return r
}

func RectWithOriginAndSize(origin, size Vec) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) TopLeft() Vec {
	return r.Min
}

func (r Rect) TopRight() Vec {
	return Vec{X: r.Max.X, Y: r.Min.Y}
}

func (r Rect) BottomLeft() Vec {
	return Vec{X: r.Min.X, Y: r.Max.Y}
}

func (r Rect) BottomRight() Vec {
	return r.Max
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect) ToImageRectangle() image.Rectangle {
	return image.Rectangle{
		Min: r.Min.ToImagePoint(),
		Max: r.Max.ToImagePoint(),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
