// Package vmath holds the small math helpers shared by the rules engine,
// the rasterizer, and the animation code. Angles are expressed in turns
// (1.0 = one full rotation) rather than radians.
package vmath

import "math"

const Tau = 2 * math.Pi

// Vec2 is a 2D point or extent in pixel space.
type Vec2 struct {
	X, Y float32
}

// Sin returns the sine of an angle given in turns.
func Sin(turns float32) float32 {
	return float32(math.Sin(float64(turns) * Tau))
}

// Cos returns the cosine of an angle given in turns.
func Cos(turns float32) float32 {
	return float32(math.Cos(float64(turns) * Tau))
}

// FloorInt rounds toward negative infinity.
func FloorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// CeilInt rounds toward positive infinity.
func CeilInt(v float32) int {
	return int(math.Ceil(float64(v)))
}

// RoundUint8 converts a float channel value to 8 bits, rounding half up.
// Inputs are expected in [0, 255]; values outside are clamped.
func RoundUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// EaseSmooth maps t in [0, 1] onto a cosine ease-in-out curve. Used by the
// movement animation so steps settle instead of snapping.
func EaseSmooth(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 0.5 - 0.5*Cos(0.5*t)
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

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
