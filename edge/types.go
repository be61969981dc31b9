package edge

import "github.com/lixenwraith/weave/vmath"

// Point is a sampled gradient location; Direction is atan2(gy, gx) of the winning kernel
type Point struct {
	X, Y      float64
	Magnitude float64
	Direction float64
}

// Pos returns the coordinate part
func (p Point) Pos() vmath.Point {
	return vmath.Point{X: p.X, Y: p.Y}
}

// Chain is an ordered polyline of edge points
type Chain []Point

// Kind tells how a Result was produced
type Kind uint8

const (
	// Detected chains come from convolution of real pixels
	Detected Kind = iota + 1
	// Fallback chains are procedural patterns substituted when pixels were unavailable
	Fallback
)

func (k Kind) String() string {
	switch k {
	case Detected:
		return "detected"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is the uniform output of the extraction pipeline
type Result struct {
	Kind   Kind
	Chains []Chain

	// Detection diagnostics, zero for Fallback
	Points    int
	Attempts  int
	Threshold float64
}

// PointCount returns the total number of points across all chains
func (r Result) PointCount() int {
	n := 0
	for _, c := range r.Chains {
		n += len(c)
	}
	return n
}
