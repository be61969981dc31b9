package fabric

import (
	"math"

	"github.com/lixenwraith/weave/edge"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/vmath"
)

// morphIndex buckets edge points into cells of the morph radius so a lookup
// only visits the 3×3 neighborhood around a fabric point
type morphIndex struct {
	cells map[[2]int][]vmath.Point
	count int
}

func newMorphIndex(chains []edge.Chain) morphIndex {
	m := morphIndex{cells: make(map[[2]int][]vmath.Point)}
	for _, c := range chains {
		for _, p := range c {
			k := cellKey(p.X, p.Y)
			m.cells[k] = append(m.cells[k], p.Pos())
			m.count++
		}
	}
	return m
}

func cellKey(x, y float64) [2]int {
	r := parameter.FabricMorphRadius
	return [2]int{int(math.Floor(x / r)), int(math.Floor(y / r))}
}

func (m morphIndex) len() int { return m.count }

// displacement returns the weighted mean offset from base toward edge points
// within the morph radius, weight (1 - d/radius); zero when none are in reach
func (m morphIndex) displacement(base vmath.Point) vmath.Point {
	if m.count == 0 {
		return vmath.Point{}
	}
	r := parameter.FabricMorphRadius
	k := cellKey(base.X, base.Y)

	var sum vmath.Point
	var weight float64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, p := range m.cells[[2]int{k[0] + dx, k[1] + dy}] {
				delta := p.Sub(base)
				d := delta.Len()
				if d >= r {
					continue
				}
				w := 1 - d/r
				sum = sum.Add(delta.Scale(w))
				weight += w
			}
		}
	}
	if weight == 0 {
		return vmath.Point{}
	}
	return sum.Scale(1 / weight)
}

// Displacement exposes the morph pull at full transformation progress for a rest position
func (f *Fabric) Displacement(base vmath.Point) vmath.Point {
	return f.morph.displacement(base).Scale(parameter.FabricMorphGain)
}
