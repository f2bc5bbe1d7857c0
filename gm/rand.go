package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec() Vec {
	for {
		v := Vec{
			X: RandomIn(-1, 1),
			Y: RandomIn(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}
