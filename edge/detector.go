package edge

import (
	"errors"
	"math"
)

// ErrNoPixels reports a buffer that cannot be read as RGBA pixels
var ErrNoPixels = errors.New("edge: pixel buffer unavailable")

// Detection defaults
const (
	DefaultTarget      = 100
	DefaultMaxAttempts = 3
	DefaultTolerance   = 0.2
	DefaultStride      = 6
	DefaultMapFloor    = 0.3
	DefaultThreshold   = 25.0

	lowerFactor = 0.7 // too few points
	raiseFactor = 1.4 // too many points
)

// Detector samples gradient points and tunes its threshold toward a target count
type Detector struct {
	Target      int
	MaxAttempts int
	Tolerance   float64 // accepted fraction around Target
	Stride      int     // sampling step in pixels
	MapFloor    float64 // fraction of threshold kept in the intermediate map
}

// NewDetector returns a detector with the stock tuning
func NewDetector() *Detector {
	return &Detector{
		Target:      DefaultTarget,
		MaxAttempts: DefaultMaxAttempts,
		Tolerance:   DefaultTolerance,
		Stride:      DefaultStride,
		MapFloor:    DefaultMapFloor,
	}
}

// DetectWithThreshold runs a single detection pass
func (d *Detector) DetectWithThreshold(g *Gray, threshold float64) []Point {
	return d.sample(g, gradientMap(g, threshold*d.MapFloor), threshold)
}

// Detect runs the adaptive loop and returns the attempt closest to Target,
// with the number of attempts made and the threshold that produced the result
func (d *Detector) Detect(g *Gray, threshold float64) (best []Point, attempts int, used float64) {
	maxAttempts := max(d.MaxAttempts, 1)

	// Thresholds only fall by lowerFactor per attempt, so one map at the lowest reachable floor serves every pass
	lowest := threshold * math.Pow(lowerFactor, float64(maxAttempts-1))
	m := gradientMap(g, lowest*d.MapFloor)

	lo := float64(d.Target) * (1 - d.Tolerance)
	hi := float64(d.Target) * (1 + d.Tolerance)
	bestDiff := math.MaxInt

	for attempt := 0; attempt < maxAttempts; attempt++ {
		attempts++
		pts := d.sample(g, m, threshold)
		n := len(pts)

		diff := n - d.Target
		if diff < 0 {
			diff = -diff
		}
		if attempt == 0 || diff < bestDiff {
			best, bestDiff, used = pts, diff, threshold
		}

		if float64(n) >= lo && float64(n) <= hi {
			break
		}
		if n < d.Target {
			threshold *= lowerFactor
		} else {
			threshold *= raiseFactor
		}
	}
	return best, attempts, used
}

// sample walks interior pixels on the stride grid and keeps map cells above threshold
func (d *Detector) sample(g *Gray, m []cell, threshold float64) []Point {
	stride := max(d.Stride, 1)
	var pts []Point
	for y := 1; y < g.H-1; y += stride {
		for x := 1; x < g.W-1; x += stride {
			c := m[y*g.W+x]
			if c.magnitude > threshold {
				pts = append(pts, Point{
					X:         float64(x),
					Y:         float64(y),
					Magnitude: c.magnitude,
					Direction: c.direction,
				})
			}
		}
	}
	return pts
}
