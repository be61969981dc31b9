package fabric

import (
	"math"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Axis is the direction a thread runs along
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// ThreadPoint is one control point of a thread
type ThreadPoint struct {
	Base   vmath.Point // rest position
	Pos    vmath.Point // displayed position after wave and pointer push
	Offset float64
}

// Thread is one fabric strand; the point count is fixed at creation
type Thread struct {
	Axis   Axis
	Index  int // position among threads of the same axis
	Points []ThreadPoint

	Phase      float64
	ColorPhase float64
	ColorSpeed float64

	HueJitter        float64
	SaturationJitter float64
	LightnessJitter  float64

	Color render.Color
}

// newThread lays out a thread at pos across a span of length pixels
func newThread(axis Axis, index int, pos, length float64, rng *vmath.FastRand) Thread {
	count := int(math.Ceil(length/parameter.FabricPointStep)) + 1
	t := Thread{
		Axis:             axis,
		Index:            index,
		Points:           make([]ThreadPoint, count),
		Phase:            rng.Float64() * vmath.TwoPi,
		ColorPhase:       rng.Float64() * vmath.TwoPi,
		ColorSpeed:       rng.Range(parameter.FabricColorSpeedMin, parameter.FabricColorSpeedMax),
		HueJitter:        rng.Spread(parameter.FabricHueJitter),
		SaturationJitter: rng.Spread(parameter.FabricSaturationJitter),
		LightnessJitter:  rng.Spread(parameter.FabricLightnessJitter),
	}
	for i := range t.Points {
		along := float64(i) * parameter.FabricPointStep
		var base vmath.Point
		if axis == Horizontal {
			base = vmath.Point{X: along, Y: pos}
		} else {
			base = vmath.Point{X: pos, Y: along}
		}
		t.Points[i] = ThreadPoint{
			Base:   base,
			Pos:    base,
			Offset: rng.Float64() * parameter.FabricPointOffsetMax,
		}
	}
	return t
}

// ColorFor derives the thread color from the active palette and the color clock
func (t *Thread) ColorFor(p Palette, clock float64) render.Color {
	hue := p.HueAt(clock*t.ColorSpeed+t.ColorPhase) + t.HueJitter
	sat := vmath.Clamp(p.Saturation+t.SaturationJitter, parameter.FabricSaturationMin, parameter.FabricSaturationMax)
	light := vmath.Clamp(p.Lightness+t.LightnessJitter, parameter.FabricLightnessMin, parameter.FabricLightnessMax)
	return render.HSL(hue, sat, light, 1)
}

// Alpha is the slow per-thread shimmer applied when stroking
func (t *Thread) Alpha(time float64) float64 {
	return parameter.FabricAlphaBase + math.Sin(time+t.Phase)*parameter.FabricAlphaSwing
}

// displace moves p along the thread's minor axis
func (t *Thread) displace(p vmath.Point, amount float64) vmath.Point {
	if t.Axis == Horizontal {
		p.Y += amount
	} else {
		p.X += amount
	}
	return p
}

// minor returns the component of v on the thread's minor axis
func (t *Thread) minor(v vmath.Point) float64 {
	if t.Axis == Horizontal {
		return v.Y
	}
	return v.X
}

// WeaveBreak reports whether a vertical thread interrupts its stroke at point i
func WeaveBreak(thread, i int) bool {
	return (thread+i/parameter.FabricWeaveRun)%2 == 0 && i%parameter.FabricWeavePeriod == parameter.FabricWeaveSlot
}
