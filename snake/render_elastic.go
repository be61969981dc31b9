package snake

import (
	"math"

	"github.com/lixenwraith/weave/effects"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

const codeChars = "01ABCDEFGHIJKLMNOPQRSTUVWXYZ>|<{}[]()+-=*/@#$%^&"

var elasticGridColor = render.Hex("#002200")

func (g *Game) renderElastic(s render.Surface) {
	b := g.bloom * 0.3
	s.FillRect(0, 0, g.w, g.h, render.Solid(render.Color{R: b, G: 0.1 + b, B: b, A: 1}))

	if g.bloom < 0.8 {
		g.renderGridLines(s, 20, elasticGridColor)
	}
	if g.State() == StateBloom {
		effects.BloomSparks(s, g.w, g.h, g.bloom, g.frame)
	}

	g.renderCoded(s, g.player)
	g.renderCoded(s, g.ai)
	if g.x != nil {
		g.renderX(s, g.x)
	}

	if g.bloom > 0 {
		g.renderBloom(s)
	}
	g.renderProximity(s)
	g.renderResetMessage(s, elasticResetLines)

	if g.bloom < 0.9 {
		g.renderCRT(s)
	}
}

// renderCoded draws hollow segments filled with scrolling code, the hidden word surfaces as reveal grows
func (g *Game) renderCoded(s render.Surface, sn *Snake) {
	n := len(sn.Segments)
	half := sn.Size / 2
	inner := render.Solid(render.Black)

	for i, seg := range sn.Segments {
		alpha := 1 - float64(i)/float64(n)*0.3
		s.FillRect(seg.X-half, seg.Y-half, sn.Size, sn.Size, render.Solid(sn.Color.WithAlpha(alpha)))
		s.FillRect(seg.X-half+1, seg.Y-half+1, sn.Size-2, sn.Size-2, inner)
		g.renderCode(s, sn, i, seg)
	}

	head := sn.Head()
	s.FillRect(head.X-half-1, head.Y-half-1, sn.Size+2, sn.Size+2, render.Solid(sn.Color))
	eye := render.Solid(render.White)
	s.FillRect(head.X-2, head.Y-2, 1, 1, eye)
	s.FillRect(head.X+1, head.Y-2, 1, 1, eye)
}

// renderCode writes two glyphs into segment i, the last two segments stay blank
func (g *Game) renderCode(s render.Surface, sn *Snake, i int, seg vmath.Point) {
	n := len(sn.Segments)
	if i >= n-2 {
		return
	}
	scroll := 2.0
	if g.State() == StateBloom {
		scroll = 0.5
	}
	off := math.Mod(g.codeOffset*scroll+float64(i)*50, 1000)
	revealing := (g.State() == StateBloom || g.reveal > 0) && g.reveal > float64(i)/float64(n)

	for col := 0; col < 2; col++ {
		x := seg.X - sn.Size/2 + 2 + float64(col)*3
		y := seg.Y - sn.Size/2 + 4

		var ch byte
		if revealing {
			ch = revealWord[(i+int(off/100))%len(revealWord)]
			s.SetFill(render.Solid(render.White))
		} else {
			ch = codeChars[(int(off)+col+i*7)%len(codeChars)]
			s.SetFill(render.Solid(sn.Color.WithAlpha(0.5)))
		}
		s.FillText(string(ch), x, y, 6, render.AlignLeft)
	}
}

// renderX draws the collectible as a pulsing halo with a white cross
func (g *Game) renderX(s render.Surface, x *Food) {
	r := 20 + math.Sin(x.Glow)*5
	s.FillRect(x.Pos.X-r, x.Pos.Y-r, r*2, r*2, render.Radial(x.Pos.X, x.Pos.Y, 0, r,
		render.Stop{Offset: 0, Color: render.White},
		render.Stop{Offset: 0.5, Color: render.Hex("#ffff00")},
		render.Stop{Offset: 1, Color: render.Transparent},
	))

	s.SetStroke(render.Solid(render.White))
	s.SetLineWidth(3)
	s.MoveTo(x.Pos.X-8, x.Pos.Y-8)
	s.LineTo(x.Pos.X+8, x.Pos.Y+8)
	s.MoveTo(x.Pos.X+8, x.Pos.Y-8)
	s.LineTo(x.Pos.X-8, x.Pos.Y+8)
	s.Stroke()
}

// renderCRT applies the tube overlays
func (g *Game) renderCRT(s render.Surface) {
	if g.frame%parameter.ChromaFramePeriod == 0 {
		effects.Chroma(s, g.w, g.h)
	}
	effects.Scanlines(s, g.w, g.h, parameter.ScanlineSpacing, 2, render.Black.WithAlpha(0x15/255.0))
	effects.Vignette(s, g.w, g.h, render.Black.WithAlpha(parameter.VignetteEdgeAlpha))
	effects.StaticNoise(s, g.w, g.h, g.noise)
}
