package vmath

import "math"

// NormalizeAngle wraps angle to [0, 2π)
func NormalizeAngle(angle float64) float64 {
	return Mod(angle, TwoPi)
}

// AngleDiff returns the absolute shortest difference between angles
// Result in [0, π]
func AngleDiff(a, b float64) float64 {
	d := NormalizeAngle(b - a)
	if d > math.Pi {
		d = TwoPi - d
	}
	return d
}

// AngleTo returns the heading from p to q
func AngleTo(p, q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}
