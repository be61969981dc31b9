package vmath

import "math"

// EaseOutCubic decelerates to t=1
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuart decelerates harder than cubic
func EaseOutQuart(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 4)
}

func EaseInOutQuad(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Progress returns elapsed/total clamped to [0, 1], total <= 0 yields 1
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(elapsed / total)
}
