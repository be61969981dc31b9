package fabric

import (
	"math"

	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Trajectory shapes how a palette's hue travels across its range over one period
type Trajectory uint8

const (
	// TrajectorySunrise sweeps linearly from base to base+range
	TrajectorySunrise Trajectory = iota
	// TrajectoryWave oscillates across the full range once per period
	TrajectoryWave
	// TrajectoryGrowth eases out and back, never touching the range ends
	TrajectoryGrowth
	// TrajectoryDescent sweeps from base+range back to base
	TrajectoryDescent
	// TrajectoryPulse oscillates twice per period around the middle of the range
	TrajectoryPulse
)

func (t Trajectory) String() string {
	switch t {
	case TrajectorySunrise:
		return "sunrise"
	case TrajectoryWave:
		return "wave"
	case TrajectoryGrowth:
		return "growth"
	case TrajectoryDescent:
		return "descent"
	case TrajectoryPulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// Fraction maps cycle progress in [0, 1] to a fraction of the hue range
func (t Trajectory) Fraction(progress float64) float64 {
	switch t {
	case TrajectorySunrise:
		return progress
	case TrajectoryWave:
		return math.Sin(progress*vmath.TwoPi)*0.5 + 0.5
	case TrajectoryGrowth:
		return math.Sin(progress*math.Pi)*0.8 + 0.1
	case TrajectoryDescent:
		return 1 - progress
	case TrajectoryPulse:
		return math.Sin(progress*2*vmath.TwoPi)*0.3 + 0.5
	default:
		return 0
	}
}

// Palette is a themed hue band shared by every thread
type Palette struct {
	Name       string
	BaseHue    float64 // degrees
	HueRange   float64 // degrees
	Saturation float64 // percent
	Lightness  float64 // percent
	Trajectory Trajectory
	Period     float64 // color-clock units per cycle
}

// Palettes rotate in this order
var Palettes = []Palette{
	{Name: "dawn", BaseHue: 15, HueRange: 45, Saturation: 75, Lightness: 65, Trajectory: TrajectorySunrise, Period: 120},
	{Name: "ocean", BaseHue: 195, HueRange: 60, Saturation: 70, Lightness: 50, Trajectory: TrajectoryWave, Period: 100},
	{Name: "forest", BaseHue: 120, HueRange: 40, Saturation: 65, Lightness: 45, Trajectory: TrajectoryGrowth, Period: 150},
	{Name: "sunset", BaseHue: 300, HueRange: 90, Saturation: 85, Lightness: 60, Trajectory: TrajectoryDescent, Period: 90},
	{Name: "monochrome", BaseHue: 220, HueRange: 20, Saturation: 50, Lightness: 50, Trajectory: TrajectoryPulse, Period: 80},
}

// Hue returns the trajectory hue for cycle progress in [0, 1], wrapped to [0, 360)
func (p Palette) Hue(progress float64) float64 {
	return vmath.Mod(p.BaseHue+p.HueRange*p.Trajectory.Fraction(progress), 360)
}

// Progress converts a color clock reading to cycle progress
func (p Palette) Progress(clock float64) float64 {
	if p.Period <= 0 {
		return 0
	}
	return vmath.Mod(clock, p.Period) / p.Period
}

// HueAt is Hue(Progress(clock))
func (p Palette) HueAt(clock float64) float64 {
	return p.Hue(p.Progress(clock))
}

// Background returns the three diagonal gradient stops behind the threads
func (p Palette) Background(clock float64) [3]render.Color {
	h := p.HueAt(clock)
	return [3]render.Color{
		render.HSL(h, 12, 4, 1),
		render.HSL(h+p.HueRange*0.3, 8, 2, 1),
		render.HSL(h+p.HueRange*0.6, 10, 3, 1),
	}
}
