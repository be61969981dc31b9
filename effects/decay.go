package effects

import (
	"math"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// DecayPattern selects the marker shape
type DecayPattern uint8

const (
	PatternPixel DecayPattern = iota
	PatternCross
	PatternDiamond
)

// DecayMarker is a hue-drifting block that fades out over its lifetime
type DecayMarker struct {
	Pos      vmath.Point
	Life     float64
	Decay    float64
	Hue      float64
	HueShift float64
	Size     float64
	Pattern  DecayPattern
}

// DecayMarkers is the psychedelic marker pool
type DecayMarkers struct {
	Markers []DecayMarker
}

// Spawn adds one marker anywhere on a w×h canvas
func (d *DecayMarkers) Spawn(w, h, baseSize float64, rng *vmath.FastRand) {
	d.Markers = append(d.Markers, DecayMarker{
		Pos:      vmath.Point{X: rng.Float64() * w, Y: rng.Float64() * h},
		Life:     1,
		Decay:    rng.Range(parameter.DecayMarkerDecayMin, parameter.DecayMarkerDecayMax),
		Hue:      rng.Float64() * 360,
		HueShift: rng.Spread(parameter.DecayMarkerHueShift),
		Size:     baseSize + rng.Float64()*parameter.DecayMarkerSizeJitter,
		Pattern:  DecayPattern(rng.Intn(parameter.DecayMarkerPatterns)),
	})
}

// Update fades and hue-shifts every marker, compacting in place
func (d *DecayMarkers) Update() {
	n := 0
	for _, m := range d.Markers {
		m.Life -= m.Decay
		m.Hue += m.HueShift
		if m.Life > 0 {
			d.Markers[n] = m
			n++
		}
	}
	d.Markers = d.Markers[:n]
}

// Render draws markers; saturated marks pulse brighter when vivid is set
func (d *DecayMarkers) Render(s render.Surface, frame uint64, vivid bool) {
	sat := 40.0
	if vivid {
		sat = 80
	}
	light := 50 + math.Sin(float64(frame)*0.05)*20

	for _, m := range d.Markers {
		p := render.Solid(render.HSL(m.Hue, sat, light, m.Life))
		x, y, sz := m.Pos.X, m.Pos.Y, m.Size
		switch m.Pattern {
		case PatternPixel:
			s.FillRect(x, y, sz, sz, p)
		case PatternCross:
			s.FillRect(x, y, sz, sz, p)
			s.FillRect(x-sz, y, sz, sz, p)
			s.FillRect(x+sz, y, sz, sz, p)
			s.FillRect(x, y-sz, sz, sz, p)
			s.FillRect(x, y+sz, sz, sz, p)
		case PatternDiamond:
			half := sz / 2
			s.FillRect(x, y-half, sz, sz, p)
			s.FillRect(x-half, y, sz, sz, p)
			s.FillRect(x+half, y, sz, sz, p)
			s.FillRect(x, y+half, sz, sz, p)
		}
	}
}

func (d *DecayMarkers) Len() int { return len(d.Markers) }

// Clear drops every marker, keeping capacity
func (d *DecayMarkers) Clear() { d.Markers = d.Markers[:0] }
