package effects

import (
	"math"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Heart burst colors alternate per particle
var (
	HeartMagenta = render.Hex("#ff00ff")
	HeartAmber   = render.Hex("#ffbf00")
)

// TrailPoint is one remembered position behind a particle
type TrailPoint struct {
	Pos  vmath.Point
	Life float64
}

// HeartParticle flies outward from the burst center leaving a short trail
type HeartParticle struct {
	Pos   vmath.Point
	Vel   vmath.Point
	Color render.Color
	Life  float64
	Size  float64
	Decay float64
	Trail []TrailPoint
}

// Hearts is the heart burst pool
type Hearts struct {
	Particles []HeartParticle
}

// Burst releases a ring of particles around center
func (h *Hearts) Burst(center vmath.Point, baseSize float64, rng *vmath.FastRand) {
	n := parameter.HeartCount
	for i := 0; i < n; i++ {
		angle := vmath.TwoPi / float64(n) * float64(i)
		speed := rng.Range(parameter.HeartSpeedMin, parameter.HeartSpeedMax)
		color := HeartMagenta
		if i%2 != 0 {
			color = HeartAmber
		}
		h.Particles = append(h.Particles, HeartParticle{
			Pos:   center,
			Vel:   vmath.Point{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Color: color,
			Life:  1,
			Size:  baseSize + rng.Float64()*parameter.HeartSizeJitter,
			Decay: parameter.HeartDecay,
			Trail: make([]TrailPoint, 0, parameter.HeartTrailLength+1),
		})
	}
}

// Update advances every particle one frame and drops the dead ones in place
func (h *Hearts) Update() {
	n := 0
	for i := range h.Particles {
		p := &h.Particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= p.Decay

		p.Trail = append(p.Trail, TrailPoint{Pos: p.Pos, Life: parameter.HeartTrailLife})
		if len(p.Trail) > parameter.HeartTrailLength {
			copy(p.Trail, p.Trail[1:])
			p.Trail = p.Trail[:len(p.Trail)-1]
		}
		live := 0
		for j := range p.Trail {
			p.Trail[j].Life -= parameter.HeartTrailDecay
			if p.Trail[j].Life > 0 {
				p.Trail[live] = p.Trail[j]
				live++
			}
		}
		p.Trail = p.Trail[:live]

		if p.Life > 0 {
			h.Particles[n] = *p
			n++
		}
	}
	clear(h.Particles[n:])
	h.Particles = h.Particles[:n]
}

// Render draws trails then particle bodies
func (h *Hearts) Render(s render.Surface) {
	for i := range h.Particles {
		p := &h.Particles[i]
		for j, tp := range p.Trail {
			a := tp.Life * float64(j) / float64(len(p.Trail)) * 0.5
			s.FillRect(tp.Pos.X-1, tp.Pos.Y-1, 2, 2, render.Solid(p.Color.WithAlpha(a)))
		}
		s.FillRect(p.Pos.X-p.Size/2, p.Pos.Y-p.Size/2, p.Size, p.Size, render.Solid(p.Color.WithAlpha(p.Life)))
	}
}

func (h *Hearts) Len() int { return len(h.Particles) }

// Clear drops every particle, keeping capacity
func (h *Hearts) Clear() {
	clear(h.Particles)
	h.Particles = h.Particles[:0]
}
