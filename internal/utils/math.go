// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngularDistance is the unsigned shortest distance between two angles in degrees.
func AngularDistance(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInCubic accelerates from zero velocity.
func EaseInCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * t
}

// EaseOutCubic decelerates to zero velocity.
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1) - 1
	return t*t*t + 1
}
