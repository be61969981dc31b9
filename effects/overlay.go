package effects

import (
	"math"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Scanlines fills a thin band every spacing pixels
func Scanlines(s render.Surface, w, h, spacing, thickness float64, c render.Color) {
	if spacing <= 0 {
		return
	}
	p := render.Solid(c)
	for y := 0.0; y < h; y += spacing {
		s.FillRect(0, y, w, thickness, p)
	}
}

// Vignette darkens the outer ring of the canvas toward edge
func Vignette(s render.Surface, w, h float64, edge render.Color) {
	cx, cy := w/2, h/2
	r := math.Max(w, h) * parameter.VignetteOuterFactor
	s.FillRect(0, 0, w, h, render.Radial(cx, cy, 0, r,
		render.Stop{Offset: 0, Color: render.Transparent},
		render.Stop{Offset: parameter.VignetteOuterFactor, Color: render.Transparent},
		render.Stop{Offset: 1, Color: edge},
	))
}

// Chroma washes offset red and blue planes over the frame in screen mode
func Chroma(s render.Surface, w, h float64) {
	off := parameter.ChromaOffset
	s.BeginLayer(render.CompositeScreen, parameter.ChromaAlpha)
	s.FillRect(-off, 0, w, h, render.Solid(render.Color{R: 1, A: 1}))
	s.FillRect(off, 0, w, h, render.Solid(render.Color{B: 1, A: 1}))
	s.EndLayer()
}

// StaticNoise occasionally sprinkles faint white pixels; rng is owned by the caller
func StaticNoise(s render.Surface, w, h float64, rng *vmath.FastRand) {
	if !rng.Chance(parameter.StaticNoiseChance) {
		return
	}
	sz := parameter.StaticNoisePixelSize
	for i := 0; i < parameter.StaticNoisePixels; i++ {
		a := rng.Float64() * 0.05
		s.FillRect(rng.Float64()*w, rng.Float64()*h, sz, sz, render.Solid(render.White.WithAlpha(a)))
	}
}

// BloomGlow paints the central white-yellow-pink radial light at intensity
func BloomGlow(s render.Surface, w, h, radius, intensity float64) {
	cx, cy := w/2, h/2
	s.FillRect(0, 0, w, h, render.Radial(cx, cy, 0, radius,
		render.Stop{Offset: 0, Color: render.White.WithAlpha(intensity * 0.8)},
		render.Stop{Offset: 0.3, Color: render.Color{R: 1, G: 1, A: intensity * 0.4}},
		render.Stop{Offset: 0.6, Color: render.RGBA8(255, 100, 255, intensity*0.2)},
		render.Stop{Offset: 1, Color: render.Transparent},
	))
}

// BloomSparks draws the orbiting sparks around the canvas center
func BloomSparks(s render.Surface, w, h, intensity float64, frame uint64) {
	count := int(intensity * 25)
	if count == 0 {
		return
	}
	t := float64(frame)
	p := render.Solid(render.White.WithAlpha(intensity * 0.6))
	for i := 0; i < count; i += 2 {
		angle := float64(i)/float64(count)*vmath.TwoPi + t*0.01
		dist := 50 + math.Sin(t*0.02+float64(i))*30
		x := w/2 + math.Cos(angle)*dist
		y := h/2 + math.Sin(angle)*dist
		s.FillRect(x-1.5, y-1.5, 3, 3, p)
	}
}
