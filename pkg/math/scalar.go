package math

import "github.com/chewxy/math32"

// Tau is a full turn in radians.
const Tau = 2 * math32.Pi

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep01 applies the cubic smoothstep curve to t in [0, 1].
func Smoothstep01(t float32) float32 {
	return t * t * (3 - 2*t)
}

// WrapAngle reduces an angle to the range [0, Tau).
func WrapAngle(angle float32) float32 {
	wrapped := math32.Mod(angle, Tau)
	if wrapped < 0 {
		wrapped += Tau
	}
	return wrapped
}

// ShortestAngleDelta returns the signed smallest rotation from one
// angle to another, in (-Pi, Pi].
func ShortestAngleDelta(from, to float32) float32 {
	delta := math32.Mod(to-from+math32.Pi, Tau)
	if delta < 0 {
		delta += Tau
	}
	delta -= math32.Pi
	if delta <= -math32.Pi {
		delta += Tau
	}
	return delta
}
