package effects

import (
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// FoodTrailColor tints the relocation streak
var FoodTrailColor = render.RGBA8(255, 100, 100, parameter.FoodTrailColorAlpha)

// TrailMark is one square of a relocation streak, hidden until Delay reaches zero
type TrailMark struct {
	Pos   vmath.Point
	Life  float64
	Size  float64
	Delay int
}

// FoodTrail is the pool of streaks left by relocating decoy food
type FoodTrail struct {
	Marks []TrailMark
}

// Spawn lays Steps+1 marks from a to b, each appearing FoodTrailDelayStep frames after the previous
func (t *FoodTrail) Spawn(a, b vmath.Point, size float64) {
	steps := parameter.FoodTrailSteps
	for i := 0; i <= steps; i++ {
		t.Marks = append(t.Marks, TrailMark{
			Pos:   a.Lerp(b, float64(i)/float64(steps)),
			Life:  1,
			Size:  size,
			Delay: i * parameter.FoodTrailDelayStep,
		})
	}
}

// Update counts down delays, fades visible marks and compacts in place
func (t *FoodTrail) Update() {
	n := 0
	for i := range t.Marks {
		m := t.Marks[i]
		if m.Delay > 0 {
			m.Delay--
		} else {
			m.Life -= parameter.FoodTrailDecay
			if m.Life <= 0 {
				continue
			}
		}
		t.Marks[n] = m
		n++
	}
	t.Marks = t.Marks[:n]
}

// Render draws visible marks
func (t *FoodTrail) Render(s render.Surface) {
	for _, m := range t.Marks {
		if m.Delay > 0 {
			continue
		}
		s.FillRect(m.Pos.X-m.Size/2, m.Pos.Y-m.Size/2, m.Size, m.Size, render.Solid(FoodTrailColor.WithAlpha(m.Life)))
	}
}

func (t *FoodTrail) Len() int { return len(t.Marks) }

// Clear drops every mark, keeping capacity
func (t *FoodTrail) Clear() { t.Marks = t.Marks[:0] }
