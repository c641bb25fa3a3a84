package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	BaseWidth     = 1280
	BaseHeight    = 720
	PixelsPerUnit = 32.0
)

const Deg2Rad = math.Pi / 180

// Lerp is unclamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpClamped clamps t to [0,1] before interpolating.
func LerpClamped(a, b, t float64) float64 {
	return Lerp(a, b, Clamp01(t))
}

// Clamp checks min before max, so a min greater than max wins.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Approximately compares two floats with a tolerance scaled to their magnitude.
func Approximately(a, b float64) bool {
	const eps = 1e-6
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(b-a) < math.Max(eps*scale, eps*8)
}

// AngleDeg returns the unsigned angle between a and b in degrees.
func AngleDeg(a, b cp.Vector) float64 {
	denom := math.Sqrt(a.LengthSq() * b.LengthSq())
	if denom < 1e-15 {
		return 0
	}
	dot := Clamp(a.Dot(b)/denom, -1, 1)
	return math.Acos(dot) / Deg2Rad
}
