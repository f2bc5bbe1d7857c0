package gm

import (
	"fmt"
	"image"
	"math"
)

// Vec is a 2d vector or point. Its fields are mutable, Matrix2d.TransformCoord
// writes its results directly into a *Vec.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

// VecSplat returns a vector with both components set to value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) ToImagePoint() image.Point {
	return image.Point{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
	}
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
