package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the driver tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameMaxDeltaFactor caps a single tick's dt as a multiple of the interval after stalls
	FrameMaxDeltaFactor = 4
)

// Canvas defaults
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)
