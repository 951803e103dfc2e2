package math

import gomath "math"

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees maps an angle to the range (-180, 180].
func WrapDegrees(deg float32) float32 {
	d := float32(gomath.Mod(float64(deg), 360))
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// LerpAngle interpolates from one heading to another in degrees along the
// shortest signed arc. The result is wrapped to (-180, 180].
func LerpAngle(from, to, t float32) float32 {
	diff := WrapDegrees(to - from)
	return WrapDegrees(Lerp(from, from+diff, t))
}

// HeadingDegrees returns the yaw in degrees of an XZ direction, with 0
// facing +Z and 90 facing +X.
func HeadingDegrees(x, z float32) float32 {
	return float32(gomath.Atan2(float64(x), float64(z)) * 180 / gomath.Pi)
}
