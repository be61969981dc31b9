package snake

import (
	"math"

	"github.com/lixenwraith/weave/effects"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

var (
	gridBorderColor = render.Hex("#1a4a1a")
	gridLineColor   = render.Hex("#0a3a0a")
	gridHighlight   = render.White.WithAlpha(0.25)

	foodBody      = render.Hex("#ff3333")
	foodHighlight = render.Hex("#ff6666")
	foodShadow    = render.Hex("#cc0000")
	foodLeaf      = render.Hex("#33ff33")
)

const (
	borderWidth = 16.0
	borderPixel = 4.0
)

func (g *Game) renderGrid(s render.Surface) {
	b := g.bloom * 0.2
	bg := render.RGBA8(uint8(20+b*50), uint8(80+b*100), uint8(20+b*50), 1)
	s.FillRect(0, 0, g.w, g.h, render.Solid(bg))

	g.renderBorder(s)
	if g.bloom < 0.8 {
		g.renderGridLines(s, parameter.SnakeGridSize, gridLineColor)
	}
	if g.State() == StateBloom {
		effects.BloomSparks(s, g.w, g.h, g.bloom, g.frame)
	}

	g.decay.Render(s, g.frame, g.psychedelic)
	g.trails.Render(s)

	g.renderBlocks(s, g.player, true)
	g.renderBlocks(s, g.ai, false)
	g.hearts.Render(s)

	if g.food != nil {
		g.renderApple(s, g.food)
	}
	if g.fakeFood != nil {
		g.renderDecoy(s, g.fakeFood)
	}

	if g.bloom > 0 {
		g.renderBloom(s)
	}
	g.renderProximity(s)
	g.renderResetMessage(s, gridResetLines)

	if g.bloom < 0.9 {
		effects.Scanlines(s, g.w, g.h, parameter.ScanlineSpacing, 1, render.Black.WithAlpha(parameter.ScanlineAlpha))
	}
}

// renderBorder draws the checkered frame around the board
func (g *Game) renderBorder(s render.Surface) {
	p := render.Solid(gridBorderColor)
	for x := 0.0; x < g.w; x += borderPixel {
		for y := 0.0; y < borderWidth; y += borderPixel {
			if math.Mod(x+y, borderPixel*2) == 0 {
				s.FillRect(x, y, borderPixel, borderPixel, p)
				s.FillRect(x, g.h-borderWidth+y, borderPixel, borderPixel, p)
			}
		}
	}
	for y := 0.0; y < g.h; y += borderPixel {
		for x := 0.0; x < borderWidth; x += borderPixel {
			if math.Mod(x+y, borderPixel*2) == 0 {
				s.FillRect(x, y, borderPixel, borderPixel, p)
				s.FillRect(g.w-borderWidth+x, y, borderPixel, borderPixel, p)
			}
		}
	}
}

// bevel draws a block with a one-pixel highlight on the top-left and shadow on the bottom-right
func bevel(s render.Surface, x, y, size float64, body, light, shadow render.Color) {
	s.FillRect(x, y, size, size, render.Solid(body))
	hl := render.Solid(light)
	s.FillRect(x, y, size-2, 1, hl)
	s.FillRect(x, y, 1, size-2, hl)
	sh := render.Solid(shadow)
	s.FillRect(x+size-1, y+1, 1, size-1, sh)
	s.FillRect(x+1, y+size-1, size-1, 1, sh)
}

// renderBlocks draws a grid snake; psychedelic mode fades player hues toward magenta and the AI toward amber
func (g *Game) renderBlocks(s render.Surface, sn *Snake, isPlayer bool) {
	t := float64(g.frame)
	n := float64(len(sn.Segments))

	light := gridHighlight
	eye := render.Black
	if g.psychedelic {
		light = render.White.WithAlpha(0.6 + math.Sin(t*0.1)*0.3)
		eye = render.White
	}

	for i, seg := range sn.Segments {
		size := parameter.SnakePixelSize
		if i == 0 {
			size += 2
		}
		x := vmath.SnapGrid(seg.X, parameter.SnakeGridSize)
		y := vmath.SnapGrid(seg.Y, parameter.SnakeGridSize)

		body, dark := sn.Color, sn.Dark
		if g.psychedelic {
			wave := math.Sin(t*0.05 + float64(i)*0.3)
			var pb, pd render.Color
			if isPlayer {
				hue := 300 + wave*60
				pb, pd = render.HSL(hue, 80, 60, 1), render.HSL(hue, 80, 30, 1)
			} else {
				hue := 45 + wave*30
				pb, pd = render.HSL(hue, 90, 65, 1), render.HSL(hue, 90, 35, 1)
			}
			body, dark = body.Mix(pb, g.psychedelicMix), dark.Mix(pd, g.psychedelicMix)
		}
		alpha := 1 - float64(i)/n*0.2
		bevel(s, x, y, size, body.Fade(alpha), light, dark)

		if i == 0 {
			s.FillRect(x+1, y+1, 1, 1, render.Solid(eye))
			s.FillRect(x+size-3, y+1, 1, 1, render.Solid(eye))
		}
	}
}

// glowDiamond fills a manhattan-distance halo of pixel blocks around p
func glowDiamond(s render.Surface, p vmath.Point, radius int, c render.Color, peak float64) {
	px := parameter.SnakePixelSize
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			d := abs(dx) + abs(dy)
			if d > radius {
				continue
			}
			a := (1 - float64(d)/float64(radius)) * peak
			s.FillRect(p.X+float64(dx)*px, p.Y+float64(dy)*px, px, px, render.Solid(c.WithAlpha(a)))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (g *Game) renderApple(s render.Surface, f *Food) {
	pulse := math.Sin(f.Glow)*0.5 + 0.5
	glowDiamond(s, f.Pos, 2+int(pulse*2), render.RGBA8(255, 255, 100, 1), pulse*0.4)

	size := parameter.SnakePixelSize
	bevel(s, f.Pos.X, f.Pos.Y, size, foodBody, foodHighlight, foodShadow)
	s.FillRect(f.Pos.X+size/2, f.Pos.Y-1, 2, 2, render.Solid(foodLeaf))
}

func (g *Game) renderDecoy(s render.Surface, f *FakeFood) {
	op := parameter.SnakeFakeFoodOpacity
	pulse := math.Sin(f.Glow)*0.3 + 0.5
	glowDiamond(s, f.Pos, 1+int(pulse*1.5), render.RGBA8(255, 255, 150, 1), pulse*0.3*op)

	size := parameter.SnakePixelSize
	bevel(s, f.Pos.X, f.Pos.Y, size,
		render.RGBA8(255, 100, 100, op),
		render.RGBA8(255, 150, 150, op*0.8),
		render.RGBA8(150, 50, 50, op))
	s.FillRect(f.Pos.X+size/2, f.Pos.Y-1, 2, 2, render.Solid(render.RGBA8(100, 200, 100, op)))
}
