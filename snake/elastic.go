package snake

import (
	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// Elastic preset palette
var (
	elasticPlayerColor = render.Hex("#00ff00")
	elasticAIColor     = render.Hex("#ff6600")
)

func (g *Game) spawnElastic() {
	g.player = newElasticSnake(vmath.Point{X: g.w / 2, Y: g.h / 2}, vmath.Point{X: 1},
		parameter.SnakeElasticPlayerSpeed, parameter.SnakeElasticPlayerLength, parameter.SnakeElasticPlayerCap, elasticPlayerColor)
	start := vmath.WrapPoint(vmath.Point{X: parameter.SnakeAIStartX, Y: g.h/2 + parameter.SnakeAIStartOffsetY}, g.w, g.h)
	g.ai = newElasticSnake(start, vmath.Point{X: -1},
		parameter.SnakeElasticAISpeed, parameter.SnakeElasticAILength, parameter.SnakeElasticAICap, elasticAIColor)
}

func newElasticSnake(head, dir vmath.Point, speed float64, n, limit int, c render.Color) *Snake {
	s := &Snake{
		Segments: make([]vmath.Point, n, limit+1),
		Dir:      dir,
		Speed:    speed,
		Size:     parameter.SnakeElasticSize,
		Min:      n,
		Cap:      limit,
		Color:    c,
		Dark:     render.Black,
	}
	for i := range s.Segments {
		s.Segments[i] = vmath.Point{X: head.X - float64(i)*parameter.SnakeElasticSpacing, Y: head.Y}
	}
	return s
}

// steerElastic eases the player heading toward the pressed direction
func (g *Game) steerElastic() {
	want := g.input.Vector()
	if g.input == DirNone {
		want = g.player.Dir
	} else if !g.moved {
		g.moved = true
		g.sound.Play(audio.CueMovement)
	}
	g.player.Dir = steer(g.player.Dir, want, parameter.SnakeElasticPlayerSteer)
}

// steer lerps dir toward target and renormalizes
func steer(dir, target vmath.Point, rate float64) vmath.Point {
	x, y := vmath.Normalize2D(vmath.Lerp(dir.X, target.X, rate), vmath.Lerp(dir.Y, target.Y, rate))
	return vmath.Point{X: x, Y: y}
}

// aiHeading approaches the player from afar and circles once inside the target distance
func (g *Game) aiHeading() vmath.Point {
	d := g.player.Head().Sub(g.ai.Head())
	dist := d.Len()
	if dist == 0 {
		return g.ai.Dir
	}
	toward := d.Scale(1 / dist)
	if dist > parameter.SnakeTargetDistance {
		return toward
	}
	px, py := vmath.Perpendicular(toward.X, toward.Y)
	return toward.Scale(parameter.SnakeElasticApproach).Add(vmath.Point{X: px, Y: py}.Scale(parameter.SnakeElasticCircle))
}

// moveElastic advances the player first so the AI steers against its fresh head
func (g *Game) moveElastic() {
	g.glide(g.player)
	g.ai.Dir = steer(g.ai.Dir, g.aiHeading(), parameter.SnakeElasticAISteer)
	g.glide(g.ai)
}

func (g *Game) glide(s *Snake) {
	next := s.Head().Add(s.Dir.Scale(s.Speed))
	s.push(vmath.WrapPoint(next, g.w, g.h))
	s.follow(parameter.SnakeElasticFollow)
}
