package snake

import (
	"math"

	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Grid preset palette
var (
	gridPlayerColor = render.Hex("#39ff14")
	gridPlayerDark  = render.Hex("#2d8f10")
	gridAIColor     = render.Hex("#90ff90")
	gridAIDark      = render.Hex("#6fbf6f")
)

var gridDirections = [4]vmath.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

func (g *Game) spawnGrid() {
	cell := parameter.SnakeGridSize
	cx := vmath.SnapGrid(g.w/2, cell)
	cy := vmath.SnapGrid(g.h/2, cell)
	g.player = newGridSnake(vmath.Point{X: cx, Y: cy}, vmath.Point{X: 1},
		parameter.SnakeGridPlayerLength, parameter.SnakeGridPlayerCap, gridPlayerColor, gridPlayerDark)

	// Small canvases would otherwise start the AI off the board
	ax := vmath.WrapGrid(parameter.SnakeAIStartX, cell, g.w)
	ay := vmath.WrapGrid(g.h/2+parameter.SnakeAIStartOffsetY, cell, g.h)
	g.ai = newGridSnake(vmath.Point{X: ax, Y: ay}, vmath.Point{X: -1},
		parameter.SnakeGridAILength, parameter.SnakeGridAICap, gridAIColor, gridAIDark)
}

// newGridSnake lays n segments leftward from head, one cell apart
func newGridSnake(head, dir vmath.Point, n, limit int, c, dark render.Color) *Snake {
	s := &Snake{
		Segments: make([]vmath.Point, n, limit+1),
		Dir:      dir,
		Size:     parameter.SnakePixelSize,
		Min:      n,
		Cap:      limit,
		Color:    c,
		Dark:     dark,
	}
	for i := range s.Segments {
		s.Segments[i] = vmath.Point{X: head.X - float64(i)*parameter.SnakeGridSize, Y: head.Y}
	}
	return s
}

// stepGrid moves s one cell along its direction, wrapping on whole cells
func (g *Game) stepGrid(s *Snake) {
	cell := parameter.SnakeGridSize
	next := s.Head().Add(s.Dir.Scale(cell))
	s.push(vmath.Point{
		X: vmath.WrapGrid(next.X, cell, g.w),
		Y: vmath.WrapGrid(next.Y, cell, g.h),
	})
}

func (g *Game) moveGrid() {
	if g.frame%parameter.SnakeGridPlayerCadence == 0 {
		g.stepGrid(g.player)
	}
	if g.frame%parameter.SnakeGridAICadence == 0 {
		g.ai.Dir = g.chaseDirection()
		g.stepGrid(g.ai)
	}
}

// chaseDirection picks the dominant axis toward the player, sometimes wandering
func (g *Game) chaseDirection() vmath.Point {
	d := g.player.Head().Sub(g.ai.Head())
	var dir vmath.Point
	if math.Abs(d.X) > math.Abs(d.Y) {
		dir.X = sign(d.X)
	} else {
		dir.Y = sign(d.Y)
	}
	if g.rng.Chance(parameter.SnakeGridAIWander) {
		dir = gridDirections[g.rng.Intn(len(gridDirections))]
	}
	return dir
}

// sign maps zero to -1 so a head-on AI still commits to a direction
func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

// randomCell picks a cell at least border cells from every edge
func (g *Game) randomCell(border int) vmath.Point {
	cell := parameter.SnakeGridSize
	cols := int(g.w / cell)
	rows := int(g.h / cell)
	gx := border + g.rng.Intn(max(1, cols-border*2))
	gy := border + g.rng.Intn(max(1, rows-border*2))
	return vmath.Point{X: float64(gx) * cell, Y: float64(gy) * cell}
}

// crowds reports whether any segment of s sits within cells grid cells of p on both axes
func crowds(s *Snake, p vmath.Point, cells float64) bool {
	lim := parameter.SnakeGridSize * cells
	for _, seg := range s.Segments {
		if math.Abs(seg.X-p.X) < lim && math.Abs(seg.Y-p.Y) < lim {
			return true
		}
	}
	return false
}

// --- Decoy food ---

func (g *Game) updateFakeFood() {
	g.fakeTimer++
	if g.fakeFood == nil && g.fakeTimer > parameter.SnakeFakeFoodDelay {
		g.spawnFakeFood()
		g.fakeTimer = 0
	}

	f := g.fakeFood
	if f == nil {
		return
	}
	if !f.Animating && g.player.Head().Dist(f.Pos) < parameter.SnakeGridSize*parameter.SnakeFakeFoodFleeCells {
		g.relocateFakeFood()
		g.disappearances++
		g.sound.Play(audio.CueProximity)
	}

	if f.Animating {
		f.Progress += parameter.SnakeFakeFoodMoveSpeed
		if f.Progress >= 1 {
			f.Pos = f.To
			f.Animating = false
			g.fakeTimer = 0
		} else {
			f.Pos = f.From.Lerp(f.To, vmath.EaseOutQuart(f.Progress))
		}
	}
}

func (g *Game) spawnFakeFood() {
	head := g.player.Head()
	minDist := parameter.SnakeGridSize * parameter.SnakeFakeFoodSpawnCells
	for i := 0; i < parameter.SnakeFakeFoodSpawnAttempts; i++ {
		p := g.randomCell(parameter.SnakeFakeFoodBorder)
		if head.Dist(p) <= minDist {
			continue
		}
		if crowds(g.player, p, parameter.SnakeFakeFoodClearCells) || crowds(g.ai, p, parameter.SnakeFakeFoodClearCells) {
			continue
		}
		g.fakeFood = &FakeFood{Pos: p, Glow: g.rng.Float64() * vmath.TwoPi}
		return
	}
}

// relocateFakeFood starts the flight to a cell away from the player and leaves a trail behind
func (g *Game) relocateFakeFood() {
	f := g.fakeFood
	head := g.player.Head()
	minDist := parameter.SnakeGridSize * parameter.SnakeFakeFoodRelocateCells

	var to vmath.Point
	for i := 0; i < parameter.SnakeFakeFoodRelocateAttempts; i++ {
		to = g.randomCell(parameter.SnakeFakeFoodBorder)
		if head.Dist(to) >= minDist {
			break
		}
	}

	f.Animating = true
	f.From, f.To = f.Pos, to
	f.Progress = 0
	g.trails.Spawn(f.From, f.To, parameter.SnakePixelSize)
}

// --- Real food ---

// spawnFood places food on a cell clear of both bodies, keeping the last try if none is clear
func (g *Game) spawnFood() {
	var p vmath.Point
	for i := 0; i < parameter.SnakeFoodAttempts; i++ {
		p = g.randomCell(parameter.SnakeFoodBorder)
		if !crowds(g.player, p, 1) && !crowds(g.ai, p, 1) {
			break
		}
	}
	g.food = &Food{Pos: p}
}
