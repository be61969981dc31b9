package snake

import (
	"fmt"
	"math"

	"github.com/lixenwraith/weave/effects"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

const revealWord = "TOGETHER"

var (
	gridResetLines = []string{
		"> Friendship as eating together",
		"> Connection established",
		"> Restarting...",
	}
	elasticResetLines = []string{
		"> FOUND: X (together)",
		"> Connection established",
		"> Restarting...",
	}
	terminalGreen = render.Hex("#00ff00")
)

func (g *Game) Render(s render.Surface) {
	if g.player == nil {
		return
	}
	if g.preset == PresetElastic {
		g.renderElastic(s)
	} else {
		g.renderGrid(s)
	}
}

// renderGridLines strokes a lattice every step pixels
func (g *Game) renderGridLines(s render.Surface, step float64, c render.Color) {
	s.SetStroke(render.Solid(c))
	s.SetLineWidth(0.5)
	for x := 0.0; x < g.w; x += step {
		s.MoveTo(x, 0)
		s.LineTo(x, g.h)
	}
	for y := 0.0; y < g.h; y += step {
		s.MoveTo(0, y)
		s.LineTo(g.w, y)
	}
	s.Stroke()
}

// renderBloom draws the central light and fades in the revealed word
func (g *Game) renderBloom(s render.Surface) {
	effects.BloomGlow(s, g.w, g.h, parameter.BloomGlowRadius, g.bloom)
	if g.reveal > 0.5 {
		s.SetFill(render.Solid(render.White.WithAlpha((g.reveal - 0.5) * 2)))
		s.FillText(revealWord, g.w/2, g.h/2-50, 32, render.AlignCenter)
	}
}

// renderProximity sweeps a ring between the heads as the connection builds
func (g *Game) renderProximity(s render.Surface) {
	if g.State() != StateSearching || g.proximity <= 0 {
		return
	}
	p := vmath.Clamp01(float64(g.proximity) / float64(parameter.SnakeProximityThreshold))
	c := vmath.Midpoint(g.player.Head(), g.ai.Head())
	r := parameter.SnakeProximityRadius / 2
	start := -math.Pi / 2

	s.SetStroke(render.Solid(render.White.WithAlpha(0.2 + p*0.4)))
	s.SetLineWidth(1)
	s.MoveTo(c.X+math.Cos(start)*r, c.Y+math.Sin(start)*r)
	s.Arc(c.X, c.Y, r, start, start+p*vmath.TwoPi)
	s.Stroke()
}

// renderResetMessage types the terminal epilogue over a darkening screen
func (g *Game) renderResetMessage(s render.Surface, lines []string) {
	if g.State() != StateReset {
		return
	}
	e := frameCount(g.machine.TimeInState())
	fade := min(1, float64(e)/parameter.SnakeResetFadeFrames)

	s.FillRect(0, 0, g.w, g.h, render.Solid(render.Black.WithAlpha(fade*0.8)))
	s.SetFill(render.Solid(terminalGreen.WithAlpha(fade)))
	for i, line := range lines {
		if e > (i+1)*parameter.SnakeResetLineFrames {
			s.FillText(line, g.w/2, g.h/2-40+float64(i)*30, 20, render.AlignCenter)
		}
	}
	if (e/parameter.SnakeCursorBlinkFrames)%2 == 0 {
		s.FillText("_", g.w/2+50, g.h/2+50, 20, render.AlignCenter)
	}
}

// Status returns the two status lines shown by hosts
func (g *Game) Status() (string, string) {
	var state string
	switch g.State() {
	case StateSearching:
		state = "Searching..."
	case StateFeeding:
		state = "Food Appeared - Eat it!"
	case StateFound:
		state = "X Found - Collect it!"
	case StateBloom:
		state = "Connection Made"
	case StateReset:
		state = "Connection Found"
	}

	controls := "Controls: Arrow Keys or WASD"
	if g.State() == StateSearching && g.proximity > 0 {
		pct := min(100, float64(g.proximity)/float64(parameter.SnakeProximityThreshold)*100)
		// Controls lead so narrow hosts truncate the readout first
		controls = fmt.Sprintf("%s | Proximity: %d%%", controls, int(pct))
	}
	return "Status: " + state, controls
}
