package gm

import "math"

// Rad is an angle in radian. Positive angles rotate the x axis towards the y axis.
type Rad float64

// DegToRad converts an angle given in degrees to radian.
func DegToRad(deg float64) Rad {
	return Rad(deg * (math.Pi / 180))
}

// Sincos returns the sine and cosine of the angle, see math.Sincos.
func (r Rad) Sincos() (sin, cos float64) {
	return math.Sincos(float64(r))
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := math.Mod(float64(r)+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}
