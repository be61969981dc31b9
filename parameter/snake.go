package parameter

import "time"

// SnakeFrame is the simulated frame the snake game counts in
const SnakeFrame = 16 * time.Millisecond

// Grid preset geometry and cadence, movement happens every Nth frame
const (
	SnakeGridSize  = 12.0
	SnakePixelSize = 8.0

	SnakeGridPlayerCadence = 8
	SnakeGridAICadence     = 10
	SnakeGridPlayerLength  = 10
	SnakeGridAILength      = 8
	SnakeGridPlayerCap     = 12
	SnakeGridAICap         = 10

	// SnakeGridAIWander is the per-move chance the AI picks a random direction
	SnakeGridAIWander = 0.1
)

// AI spawn point, offset from the left edge and below the vertical center
const (
	SnakeAIStartX       = 100.0
	SnakeAIStartOffsetY = 50.0
)

// Elastic preset
const (
	SnakeElasticPlayerSpeed  = 2.0
	SnakeElasticAISpeed      = 1.5
	SnakeElasticSpacing      = 10.0
	SnakeElasticSize         = 8.0
	SnakeElasticPlayerLength = 10
	SnakeElasticAILength     = 8
	SnakeElasticPlayerCap    = 15
	SnakeElasticAICap        = 12

	SnakeElasticPlayerSteer = 0.1
	SnakeElasticAISteer     = 0.05
	SnakeElasticFollow      = 0.5
	SnakeElasticApproach    = 0.3
	SnakeElasticCircle      = 0.7

	// SnakeTargetDistance is where the AI stops approaching and starts circling
	SnakeTargetDistance = 80.0
	// SnakeXRadius is how close the heads must come to each other to collect the X
	SnakeXRadius = 30.0
)

// Proximity accumulation between the two heads
const (
	SnakeProximityRadius    = 60.0
	SnakeProximityThreshold = 2000 * time.Millisecond
	SnakeProximityCueEvery  = 60 * time.Millisecond
)

// Cinematic timing in frames
const (
	SnakeBloomRampFrames   = 300
	SnakeBloomFrames       = 480
	SnakeResetFrames       = 240
	SnakeResetFadeFrames   = 60
	SnakeResetLineFrames   = 80
	SnakeCursorBlinkFrames = 30

	SnakePsychedelicRamp = 0.02
)

// Decoy food, distances in grid cells
const (
	SnakeFakeFoodDelay            = 300
	SnakeFakeFoodBorder           = 3
	SnakeFakeFoodSpawnCells       = 5
	SnakeFakeFoodClearCells       = 2
	SnakeFakeFoodSpawnAttempts    = 100
	SnakeFakeFoodFleeCells        = 3
	SnakeFakeFoodRelocateCells    = 6
	SnakeFakeFoodRelocateAttempts = 50
	SnakeFakeFoodMoveSpeed        = 0.08
	SnakeFakeFoodPulseSpeed       = 0.08
	SnakeFakeFoodOpacity          = 0.7
)

// Real food and the X
const (
	SnakeFoodBorder     = 2
	SnakeFoodAttempts   = 50
	SnakeFoodPulseSpeed = 0.1
	SnakeXPulseSpeed    = 0.1
)

// Instruction hints
const (
	SnakeTypewriterStep      = 50 * time.Millisecond
	SnakeHintHold            = 4 * time.Second
	SnakeHintThresholdMin    = 2
	SnakeHintThresholdSpread = 6
)
