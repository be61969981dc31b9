package effects

import (
	"math"
	"time"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Field particle palette
var (
	FieldGreen  = render.Hex("#00ff00")
	FieldOrange = render.Hex("#ff6600")
)

// FieldParticle drifts across the canvas and links to close neighbors
type FieldParticle struct {
	Pos   vmath.Point
	Vel   vmath.Point
	Size  float64
	Color render.Color
	Alpha float64
	Phase float64
}

// Link joins two particles closer than the connect distance
type Link struct {
	A, B     int
	Strength float64 // 1 at zero distance, 0 at the connect distance
}

// Field is a standalone particle network engine reacting to the pointer
type Field struct {
	seed uint64
	rng  *vmath.FastRand
	w, h float64
	time float64

	Particles []FieldParticle
	Links     []Link

	pointer vmath.Point
	hovered bool
}

// NewField creates a field; Init must be called before Tick
func NewField(seed uint64) *Field {
	return &Field{seed: seed}
}

func (f *Field) Init(w, h int) {
	f.rng = vmath.NewFastRand(f.seed)
	f.w, f.h = float64(w), float64(h)
	f.time = 0
	f.hovered = false
	f.Links = f.Links[:0]

	f.Particles = f.Particles[:0]
	for i := 0; i < parameter.FieldParticleCount; i++ {
		color := FieldOrange
		if f.rng.Chance(0.5) {
			color = FieldGreen
		}
		f.Particles = append(f.Particles, FieldParticle{
			Pos:   vmath.Point{X: f.rng.Float64() * f.w, Y: f.rng.Float64() * f.h},
			Vel:   vmath.Point{X: f.rng.Spread(parameter.FieldVelocitySpread), Y: f.rng.Spread(parameter.FieldVelocitySpread)},
			Size:  f.rng.Range(parameter.FieldSizeMin, parameter.FieldSizeMax),
			Color: color,
			Alpha: f.rng.Range(parameter.FieldAlphaMin, 1),
			Phase: f.rng.Float64() * vmath.TwoPi,
		})
	}
}

func (f *Field) Resize(w, h int) {
	f.w, f.h = float64(w), float64(h)
	for i := range f.Particles {
		f.Particles[i].Pos = vmath.WrapPoint(f.Particles[i].Pos, f.w, f.h)
	}
}

// Tick advances one frame; the field runs on a fixed frame clock
func (f *Field) Tick(dt time.Duration) {
	f.time += parameter.FieldTimeStep

	for i := range f.Particles {
		p := &f.Particles[i]
		p.Pos = vmath.WrapPoint(p.Pos.Add(p.Vel), f.w, f.h)

		if f.hovered {
			d := f.pointer.Sub(p.Pos)
			dist := d.Len()
			if dist > 0 && dist < parameter.FieldPointerRadius {
				force := (parameter.FieldPointerRadius - dist) / parameter.FieldPointerRadius * parameter.FieldPointerForce
				p.Vel = p.Vel.Add(d.Scale(force / dist))
			}
		}

		p.Vel.X += math.Sin(f.time+p.Phase) * parameter.FieldDrift
		p.Vel.Y += math.Cos(f.time+p.Phase) * parameter.FieldDrift
		p.Vel = p.Vel.Scale(parameter.FieldDamping)

		p.Alpha = 0.5 + math.Sin(f.time*2+p.Phase)*0.3
	}

	f.Links = f.Links[:0]
	maxSq := parameter.FieldConnectDistance * parameter.FieldConnectDistance
	for i := range f.Particles {
		for j := i + 1; j < len(f.Particles); j++ {
			dsq := f.Particles[i].Pos.DistSq(f.Particles[j].Pos)
			if dsq < maxSq {
				f.Links = append(f.Links, Link{
					A:        i,
					B:        j,
					Strength: (parameter.FieldConnectDistance - math.Sqrt(dsq)) / parameter.FieldConnectDistance,
				})
			}
		}
	}
}

func (f *Field) Render(s render.Surface) {
	s.FillRect(0, 0, f.w, f.h, render.Linear(0, 0, f.w, f.h,
		render.Stop{Offset: 0, Color: render.Hex("#001100")},
		render.Stop{Offset: 1, Color: render.Black},
	))

	for _, l := range f.Links {
		a, b := f.Particles[l.A].Pos, f.Particles[l.B].Pos
		s.SetStroke(render.Solid(FieldGreen.WithAlpha(l.Strength * parameter.FieldConnectAlpha)))
		s.SetLineWidth(l.Strength)
		s.MoveTo(a.X, a.Y)
		s.LineTo(b.X, b.Y)
		s.Stroke()
	}

	for i := range f.Particles {
		p := &f.Particles[i]
		s.SetGlow(p.Size*parameter.FieldGlowFactor, p.Color)
		s.SetFill(render.Solid(p.Color.WithAlpha(p.Alpha)))
		s.MoveTo(p.Pos.X+p.Size, p.Pos.Y)
		s.Arc(p.Pos.X, p.Pos.Y, p.Size, 0, vmath.TwoPi)
		s.Fill()
	}
	s.SetGlow(0, render.Transparent)

	f.renderMesh(s)
	Scanlines(s, f.w, f.h, parameter.FieldScanlineSpacing, 0.5, FieldGreen.WithAlpha(parameter.FieldScanlineAlpha))
}

// renderMesh draws the faint swaying lattice over the particles
func (f *Field) renderMesh(s render.Surface) {
	step := parameter.FieldMeshSpacing
	off := math.Sin(f.time*0.5) * parameter.FieldMeshSwing
	node := func(x, y float64) (float64, float64) {
		return x + math.Sin(f.time*0.3+x*0.01)*off, y + math.Cos(f.time*0.3+y*0.01)*off
	}

	s.SetStroke(render.Solid(FieldOrange.WithAlpha(parameter.FieldMeshAlpha)))
	s.SetLineWidth(0.5)
	for x := 0.0; x < f.w+step; x += step {
		for y := 0.0; y < f.h+step; y += step {
			nx, ny := node(x, y)
			if x < f.w-step {
				ex, ey := node(x+step, y)
				s.MoveTo(nx, ny)
				s.LineTo(ex, ey)
			}
			if y < f.h-step {
				ex, ey := node(x, y+step)
				s.MoveTo(nx, ny)
				s.LineTo(ex, ey)
			}
		}
	}
	s.Stroke()
}

func (f *Field) Dispose() {
	f.Particles = nil
	f.Links = nil
}

func (f *Field) PointerMove(x, y float64) { f.pointer = vmath.Point{X: x, Y: y} }
func (f *Field) PointerEnter()            { f.hovered = true }
func (f *Field) PointerLeave()            { f.hovered = false }

// Hovered reports whether the pointer is over the canvas
func (f *Field) Hovered() bool { return f.hovered }
