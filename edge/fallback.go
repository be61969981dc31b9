package edge

import (
	"math"

	"github.com/lixenwraith/weave/vmath"
)

// Pattern generates one procedural chain around a center
type Pattern func(cx, cy, radius float64, rng *vmath.FastRand) Chain

// Patterns used when pixels cannot be read
var Patterns = []Pattern{Circle, Diamond, Spiral}

// Circle is a ring of 60 points
func Circle(cx, cy, radius float64, rng *vmath.FastRand) Chain {
	const n = 60
	c := make(Chain, 0, n)
	for i := 0; i < n; i++ {
		a := float64(i) / n * vmath.TwoPi
		c = append(c, Point{
			X:         cx + math.Cos(a)*radius,
			Y:         cy + math.Sin(a)*radius,
			Magnitude: rng.Range(50, 100),
			Direction: a + vmath.HalfPi,
		})
	}
	return c
}

// Diamond walks the four edges of a square rotated 45°, 21 points per edge
func Diamond(cx, cy, radius float64, rng *vmath.FastRand) Chain {
	const segments = 20
	size := radius * 0.8
	corners := [4]vmath.Point{
		{X: cx, Y: cy - size},
		{X: cx + size, Y: cy},
		{X: cx, Y: cy + size},
		{X: cx - size, Y: cy},
	}

	c := make(Chain, 0, 4*(segments+1))
	for k := range corners {
		from, to := corners[k], corners[(k+1)%len(corners)]
		dir := vmath.AngleTo(from, to)
		for i := 0; i <= segments; i++ {
			p := from.Lerp(to, float64(i)/segments)
			c = append(c, Point{X: p.X, Y: p.Y, Magnitude: rng.Range(40, 80), Direction: dir})
		}
	}
	return c
}

// Spiral winds 3 turns inward over 80 points
func Spiral(cx, cy, radius float64, rng *vmath.FastRand) Chain {
	const (
		turns = 3
		n     = 80
	)
	c := make(Chain, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / n
		a := t * vmath.TwoPi * turns
		r := radius * (1 - t*0.8)
		c = append(c, Point{
			X:         cx + math.Cos(a)*r,
			Y:         cy + math.Sin(a)*r,
			Magnitude: rng.Range(30, 90),
			Direction: a + vmath.HalfPi,
		})
	}
	return c
}

// ProceduralChains builds 2–3 randomly chosen patterns centered on a w×h canvas
func ProceduralChains(w, h float64, rng *vmath.FastRand) []Chain {
	cx, cy := w/2, h/2
	radius := math.Min(w, h) * 0.3

	n := 2 + rng.Intn(2)
	chains := make([]Chain, 0, n)
	for i := 0; i < n; i++ {
		p := Patterns[rng.Intn(len(Patterns))]
		if c := p(cx, cy, radius, rng); len(c) > 10 {
			chains = append(chains, c)
		}
	}
	return chains
}
