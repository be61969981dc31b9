package render

// GradientKind distinguishes gradient geometry
type GradientKind uint8

const (
	GradientLinear GradientKind = iota + 1
	GradientRadial
)

// Stop is a gradient color stop at offset in [0, 1]
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient describes a linear (X0,Y0 → X1,Y1) or radial (center X0,Y0, radii R0 → R1) ramp
type Gradient struct {
	Kind           GradientKind
	X0, Y0, X1, Y1 float64
	R0, R1         float64
	Stops          []Stop
}

// Paint is either a solid color or a gradient
type Paint struct {
	Color    Color
	Gradient *Gradient
}

// Solid wraps a color as paint
func Solid(c Color) Paint {
	return Paint{Color: c}
}

// Linear builds a linear gradient paint
func Linear(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	return Paint{Gradient: &Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}}
}

// Radial builds a radial gradient paint centered at (cx, cy)
func Radial(cx, cy, r0, r1 float64, stops ...Stop) Paint {
	return Paint{Gradient: &Gradient{Kind: GradientRadial, X0: cx, Y0: cy, X1: cx, Y1: cy, R0: r0, R1: r1, Stops: stops}}
}

// IsGradient reports whether the paint carries a gradient
func (p Paint) IsGradient() bool {
	return p.Gradient != nil && len(p.Gradient.Stops) > 0
}
