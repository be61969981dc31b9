package fabric

import (
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Render draws background, threads, edge threads and overlays
func (f *Fabric) Render(s render.Surface) {
	f.RenderBase(s)
	f.RenderEdges(s)
	f.RenderOverlay(s)
}

// RenderBase draws the palette background and the thread grid at the current opacity
func (f *Fabric) RenderBase(s render.Surface) {
	f.renderBackground(s)
	if f.opacity <= 0 {
		return
	}

	dimmed := f.opacity < 1
	if dimmed {
		s.BeginLayer(render.CompositeNormal, f.opacity)
	}
	s.SetLineWidth(parameter.FabricLineWidth)
	// Horizontal first so vertical threads cross over them outside weave breaks
	for i := range f.horizontal {
		f.strokeThread(s, &f.horizontal[i])
	}
	for i := range f.vertical {
		f.strokeThread(s, &f.vertical[i])
	}
	s.SetGlow(0, render.Transparent)
	if dimmed {
		s.EndLayer()
	}
}

func (f *Fabric) renderBackground(s render.Surface) {
	stops := f.Palette().Background(f.colorTime)
	w, h := float64(f.width), float64(f.height)
	s.FillRect(0, 0, w, h, render.Linear(0, 0, w, h,
		render.Stop{Offset: 0, Color: stops[0]},
		render.Stop{Offset: 0.5, Color: stops[1]},
		render.Stop{Offset: 1, Color: stops[2]},
	))
}

func (f *Fabric) strokeThread(s render.Surface, t *Thread) {
	if len(t.Points) < 2 {
		return
	}
	s.SetStroke(render.Solid(t.Color.WithAlpha(t.Alpha(f.time))))
	s.SetGlow(parameter.FabricGlowBlur, t.Color)

	open := false
	for i := 0; i < len(t.Points)-1; i++ {
		if t.Axis == Vertical && WeaveBreak(t.Index, i) {
			if open {
				s.Stroke()
				open = false
			}
			continue
		}
		p1, p2 := t.Points[i].Pos, t.Points[i+1].Pos
		if !open {
			s.MoveTo(p1.X, p1.Y)
			open = true
		}
		mid := vmath.Midpoint(p1, p2)
		s.QuadraticTo(p1.X, p1.Y, mid.X, mid.Y)
	}
	if open {
		s.Stroke()
	}
}

// RenderEdges draws traced edge threads at the current emergence
func (f *Fabric) RenderEdges(s render.Surface) {
	if f.emergence <= 0 || len(f.edges) == 0 {
		return
	}
	pal := f.Palette()

	s.BeginLayer(render.CompositeNormal, f.emergence)
	s.SetLineWidth(parameter.FabricEdgeLineWidth + f.emergence*parameter.FabricEdgeLineWidthAdd)
	for i, chain := range f.edges {
		if len(chain) < 2 {
			continue
		}
		hue := pal.HueAt(f.colorTime+float64(i)*parameter.FabricEdgeColorStagger) + parameter.FabricEdgeHueShift
		c := render.HSL(hue, parameter.FabricEdgeSaturation, parameter.FabricEdgeLightness, 1)
		s.SetStroke(render.Solid(c))
		s.SetGlow(parameter.FabricEdgeGlowBlur, c)

		s.MoveTo(chain[0].X, chain[0].Y)
		for j := 0; j < len(chain)-1; j++ {
			p1, p2 := chain[j].Pos(), chain[j+1].Pos()
			mid := vmath.Midpoint(p1, p2)
			s.QuadraticTo(p1.X, p1.Y, mid.X, mid.Y)
		}
		s.Stroke()
	}
	s.SetGlow(0, render.Transparent)
	s.EndLayer()
}

// RenderOverlay draws the palette-tinted scanlines and the optional pointer glow
func (f *Fabric) RenderOverlay(s render.Surface) {
	pal := f.Palette()
	hue := pal.HueAt(f.colorTime)
	w, h := float64(f.width), float64(f.height)

	if f.PointerGlow && f.hovered {
		r := parameter.FabricPointerGlowRadius
		px, py := f.pointer.X, f.pointer.Y
		s.FillRect(px-r, py-r, 2*r, 2*r, render.Radial(px, py, 0, r,
			render.Stop{Offset: 0, Color: render.HSL(hue, 70, 65, 0.2)},
			render.Stop{Offset: 0.3, Color: render.HSL(hue+pal.HueRange*0.3, 60, 55, 0.1)},
			render.Stop{Offset: 0.7, Color: render.HSL(hue+pal.HueRange*0.6, 50, 45, 0.05)},
			render.Stop{Offset: 1, Color: render.Transparent},
		))
	}

	s.SetLineWidth(parameter.FabricScanlineWidth)
	s.SetStroke(render.Solid(render.HSL(hue, 40, 45, parameter.FabricScanlineRowA)))
	for y := 0.0; y < h; y += parameter.FabricScanlineRowStep {
		s.MoveTo(0, y)
		s.LineTo(w, y)
	}
	s.Stroke()

	s.SetStroke(render.Solid(render.HSL(hue+pal.HueRange*0.5, 25, 35, parameter.FabricScanlineColA)))
	for x := 0.0; x < w; x += parameter.FabricScanlineColStep {
		s.MoveTo(x, 0)
		s.LineTo(x, h)
	}
	s.Stroke()
}
