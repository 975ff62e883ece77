// internal/utils/math.go
package utils

import "math"

const TwoPi = 2 * math.Pi

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp limits v to [lo, hi]. NaN passes through unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle maps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	return math.Remainder(angle, TwoPi)
}

// WrapAngle maps an angle into [0, 2π).
func WrapAngle(angle float64) float64 {
	r := math.Mod(angle, TwoPi)
	if r < 0 {
		r += TwoPi
	}
	// -tiny + 2π rounds up to exactly 2π
	if r >= TwoPi {
		r = 0
	}
	return r
}

// ShortestArc returns the signed rotation, in [-π, π], that turns from onto to.
func ShortestArc(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// AngleBetween returns the unsigned shortest-arc distance between two angles, in [0, π].
func AngleBetween(a, b float64) float64 {
	return math.Abs(ShortestArc(a, b))
}

// LerpAngle interpolates between two angles along the shortest arc. t = 0 gives
// from, t = 1 gives to. Constant angular speed in t, like a slerp of the two
// planar rotations.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeAngle(from + ShortestArc(from, to)*t)
}
