package parameter

// Thread grid geometry
const (
	// FabricThreadSpacing is the distance between parallel threads in pixels
	FabricThreadSpacing = 20.0

	// FabricPointStep is the distance between consecutive points along a thread
	FabricPointStep = 10.0

	// FabricPointOffsetMax bounds the random per-point offset sampled at creation
	FabricPointOffsetMax = 5.0
)

// Simulation clocks, advanced once per tick regardless of dt
const (
	FabricTimeStep    = 0.016
	FabricColorStep   = 0.005
	FabricPaletteStep = 0.001

	// FabricPaletteRotate is the palette clock value at which the next palette takes over
	FabricPaletteRotate = 200.0
)

// Displacement
const (
	FabricWaveAmplitude  = 2.0
	FabricWaveFrequency  = 2.0
	FabricWavePointPhase = 0.1

	FabricPointerRadius = 100.0
	FabricPointerPush   = 15.0

	// FabricMorphRadius is the reach of an edge point's pull on fabric points
	FabricMorphRadius = 50.0
	FabricMorphGain   = 0.3
)

// Per-thread jitter sampled at creation
const (
	FabricColorSpeedMin = 0.8
	FabricColorSpeedMax = 1.2

	FabricHueJitter        = 20.0
	FabricSaturationJitter = 10.0
	FabricLightnessJitter  = 7.5

	FabricSaturationMin = 10.0
	FabricSaturationMax = 100.0
	FabricLightnessMin  = 10.0
	FabricLightnessMax  = 90.0
)

// Thread rendering
const (
	FabricLineWidth  = 1.5
	FabricGlowBlur   = 3.0
	FabricAlphaBase  = 0.8
	FabricAlphaSwing = 0.2

	// Weave break pattern over thread index t and point index i:
	// break when (t + i/FabricWeaveRun) % 2 == 0 && i % FabricWeavePeriod == FabricWeaveSlot
	FabricWeaveRun    = 2
	FabricWeavePeriod = 4
	FabricWeaveSlot   = 2
)

// Edge thread rendering
const (
	FabricEdgeHueShift     = 60.0
	FabricEdgeSaturation   = 80.0
	FabricEdgeLightness    = 70.0
	FabricEdgeGlowBlur     = 5.0
	FabricEdgeLineWidth    = 1.5
	FabricEdgeLineWidthAdd = 0.5
	FabricEdgeColorStagger = 0.1
)

// Background and overlays
const (
	FabricScanlineRowStep = 6.0
	FabricScanlineColStep = 8.0
	FabricScanlineWidth   = 0.5
	FabricScanlineRowA    = 0.025
	FabricScanlineColA    = 0.02

	FabricPointerGlowRadius = 100.0
)
