package engine

import (
	"time"

	"github.com/lixenwraith/weave/render"
)

// Engine is one self-contained animation: it owns all of its state and timers
type Engine interface {
	// Init seeds state for a canvas of w×h pixels, calling it again restarts the engine
	Init(w, h int)
	// Tick advances the simulation by dt
	Tick(dt time.Duration)
	// Render draws the current state, it must not mutate simulation state
	Render(s render.Surface)
	// Dispose cancels pending timers and background work
	Dispose()
}

// PointerHandler is implemented by engines reacting to pointer input
type PointerHandler interface {
	PointerMove(x, y float64)
	PointerEnter()
	PointerLeave()
}

// Resizer is implemented by engines that rebuild geometry on canvas resize
type Resizer interface {
	Resize(w, h int)
}
