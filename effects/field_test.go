package effects

import (
	"testing"
	"time"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

const step = 16 * time.Millisecond

func TestFieldInit(t *testing.T) {
	f := NewField(7)
	f.Init(320, 240)

	if len(f.Particles) != parameter.FieldParticleCount {
		t.Fatalf("Expected %d particles, got %d", parameter.FieldParticleCount, len(f.Particles))
	}
	for i, p := range f.Particles {
		if p.Color != FieldGreen && p.Color != FieldOrange {
			t.Errorf("Particle %d: unexpected color %+v", i, p.Color)
		}
		if p.Size < parameter.FieldSizeMin || p.Size > parameter.FieldSizeMax {
			t.Errorf("Particle %d: size %f out of range", i, p.Size)
		}
	}

	// Same seed, same layout
	g := NewField(7)
	g.Init(320, 240)
	if g.Particles[0].Pos != f.Particles[0].Pos {
		t.Error("Expected deterministic layout for equal seeds")
	}
}

func TestFieldStaysInBounds(t *testing.T) {
	f := NewField(11)
	f.Init(200, 100)
	for i := 0; i < 500; i++ {
		f.Tick(step)
	}
	for i, p := range f.Particles {
		if p.Pos.X < 0 || p.Pos.X >= 200 || p.Pos.Y < 0 || p.Pos.Y >= 100 {
			t.Errorf("Particle %d escaped: %v", i, p.Pos)
		}
	}
}

func TestFieldLinks(t *testing.T) {
	f := NewField(3)
	f.Init(400, 300)
	f.Tick(step)

	for _, l := range f.Links {
		d := f.Particles[l.A].Pos.Dist(f.Particles[l.B].Pos)
		if d >= parameter.FieldConnectDistance {
			t.Errorf("Link %d-%d spans %f", l.A, l.B, d)
		}
		if l.Strength <= 0 || l.Strength > 1 {
			t.Errorf("Link strength %f out of range", l.Strength)
		}
	}
}

func TestFieldPointerAttraction(t *testing.T) {
	f := NewField(5)
	f.Init(400, 300)
	f.Particles = f.Particles[:1]
	f.Particles[0].Pos = vmath.Point{X: 100, Y: 100}
	f.Particles[0].Vel = vmath.Point{}

	f.PointerEnter()
	f.PointerMove(150, 100)
	if !f.Hovered() {
		t.Fatal("Expected hovered after enter")
	}
	f.Tick(step)

	if f.Particles[0].Vel.X <= 0 {
		t.Errorf("Expected pull toward pointer, got velocity %v", f.Particles[0].Vel)
	}

	f.PointerLeave()
	f.Particles[0].Vel = vmath.Point{}
	f.Tick(step)
	if v := f.Particles[0].Vel.X; v > 2*parameter.FieldDrift {
		t.Errorf("Expected drift only after leave, got %f", v)
	}
}

func TestFieldRender(t *testing.T) {
	f := NewField(1)
	f.Init(120, 90)
	f.Tick(step)

	rec := render.NewRecorder(120, 90)
	f.Render(rec)

	if got := rec.Count("Arc"); got != parameter.FieldParticleCount {
		t.Errorf("Expected %d particle arcs, got %d", parameter.FieldParticleCount, got)
	}
	if got := rec.Count("Fill"); got != parameter.FieldParticleCount {
		t.Errorf("Expected %d fills, got %d", parameter.FieldParticleCount, got)
	}
}
