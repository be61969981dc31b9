package effects

import (
	"math"
	"testing"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

func TestHeartBurst(t *testing.T) {
	var h Hearts
	center := vmath.Point{X: 100, Y: 80}
	h.Burst(center, 8, vmath.NewFastRand(1))

	if h.Len() != parameter.HeartCount {
		t.Fatalf("Expected %d particles, got %d", parameter.HeartCount, h.Len())
	}
	for i, p := range h.Particles {
		want := HeartMagenta
		if i%2 != 0 {
			want = HeartAmber
		}
		if p.Color != want {
			t.Errorf("Particle %d: expected alternating color", i)
		}
		speed := p.Vel.Len()
		if speed < parameter.HeartSpeedMin || speed > parameter.HeartSpeedMax {
			t.Errorf("Particle %d: speed %f outside [%v, %v]", i, speed, parameter.HeartSpeedMin, parameter.HeartSpeedMax)
		}
		if p.Size < 8 || p.Size > 8+parameter.HeartSizeJitter {
			t.Errorf("Particle %d: size %f out of range", i, p.Size)
		}
	}
}

func TestHeartLifetime(t *testing.T) {
	var h Hearts
	h.Burst(vmath.Point{}, 8, vmath.NewFastRand(2))

	frames := int(math.Ceil(1 / parameter.HeartDecay))
	for i := 0; i < frames-1; i++ {
		h.Update()
		for _, p := range h.Particles {
			if len(p.Trail) > parameter.HeartTrailLength {
				t.Fatalf("Trail grew to %d", len(p.Trail))
			}
		}
	}
	if h.Len() != parameter.HeartCount {
		t.Errorf("Expected particles alive before decay completes, got %d", h.Len())
	}

	h.Update()
	if h.Len() != 0 {
		t.Errorf("Expected all particles dead after %d frames, got %d", frames, h.Len())
	}
}

func TestFoodTrailStagger(t *testing.T) {
	var tr FoodTrail
	tr.Spawn(vmath.Point{X: 0, Y: 0}, vmath.Point{X: 100, Y: 0}, 8)

	if tr.Len() != parameter.FoodTrailSteps+1 {
		t.Fatalf("Expected %d marks, got %d", parameter.FoodTrailSteps+1, tr.Len())
	}
	if tr.Marks[0].Pos.X != 0 || tr.Marks[len(tr.Marks)-1].Pos.X != 100 {
		t.Errorf("Expected trail to span endpoints, got %v..%v", tr.Marks[0].Pos, tr.Marks[len(tr.Marks)-1].Pos)
	}

	rec := render.NewRecorder(200, 200)
	tr.Render(rec)
	if got := rec.Count("FillRect"); got != 1 {
		t.Errorf("Expected only the first mark visible, got %d", got)
	}

	// Last mark waits Steps*DelayStep frames then fades over 1/decay frames
	total := parameter.FoodTrailSteps*parameter.FoodTrailDelayStep + int(math.Ceil(1/parameter.FoodTrailDecay)) + 1
	for i := 0; i < total; i++ {
		tr.Update()
	}
	if tr.Len() != 0 {
		t.Errorf("Expected trail gone after %d frames, got %d marks", total, tr.Len())
	}
}

func TestDecayMarkers(t *testing.T) {
	var d DecayMarkers
	rng := vmath.NewFastRand(3)
	for i := 0; i < 100; i++ {
		d.Spawn(400, 300, 8, rng)
	}

	for _, m := range d.Markers {
		if m.Decay < parameter.DecayMarkerDecayMin || m.Decay > parameter.DecayMarkerDecayMax {
			t.Errorf("Decay %f out of range", m.Decay)
		}
		if math.Abs(m.HueShift) > parameter.DecayMarkerHueShift {
			t.Errorf("Hue shift %f out of range", m.HueShift)
		}
		if m.Pattern > PatternDiamond {
			t.Errorf("Unknown pattern %d", m.Pattern)
		}
		if m.Pos.X < 0 || m.Pos.X >= 400 || m.Pos.Y < 0 || m.Pos.Y >= 300 {
			t.Errorf("Marker outside canvas: %v", m.Pos)
		}
	}

	frames := int(math.Ceil(1/parameter.DecayMarkerDecayMin)) + 1
	for i := 0; i < frames; i++ {
		d.Update()
	}
	if d.Len() != 0 {
		t.Errorf("Expected markers gone after %d frames, got %d", frames, d.Len())
	}
}

func TestDecayMarkerPatterns(t *testing.T) {
	tests := []struct {
		pattern DecayPattern
		rects   int
	}{
		{PatternPixel, 1},
		{PatternCross, 5},
		{PatternDiamond, 4},
	}

	for _, tt := range tests {
		d := DecayMarkers{Markers: []DecayMarker{{Life: 1, Size: 8, Pattern: tt.pattern}}}
		rec := render.NewRecorder(100, 100)
		d.Render(rec, 0, true)
		if got := rec.Count("FillRect"); got != tt.rects {
			t.Errorf("Pattern %d: expected %d rects, got %d", tt.pattern, tt.rects, got)
		}
	}
}

func TestOverlays(t *testing.T) {
	rec := render.NewRecorder(100, 40)

	Scanlines(rec, 100, 40, 4, 1, render.Black.WithAlpha(0.1))
	if got := rec.Count("FillRect"); got != 10 {
		t.Errorf("Expected 10 scanlines, got %d", got)
	}

	rec.Reset()
	Chroma(rec, 100, 40)
	if rec.Count("BeginLayer") != 1 || rec.LayerDepth() != 0 {
		t.Errorf("Expected one balanced screen layer, got %d begins depth %d", rec.Count("BeginLayer"), rec.LayerDepth())
	}

	rec.Reset()
	BloomSparks(rec, 100, 40, 0, 0)
	if rec.Count("FillRect") != 0 {
		t.Error("Expected no sparks at zero intensity")
	}
	BloomSparks(rec, 100, 40, 1, 0)
	if got := rec.Count("FillRect"); got != 13 {
		t.Errorf("Expected 13 sparks at full intensity, got %d", got)
	}
}
