package parameter

// Heart burst released when the snakes connect
const (
	HeartCount       = 30
	HeartSpeedMin    = 2.0
	HeartSpeedMax    = 5.0
	HeartSizeJitter  = 4.0
	HeartDecay       = 0.015
	HeartTrailLength = 8
	HeartTrailLife   = 0.5
	HeartTrailDecay  = 0.08
)

// Fake food relocation trail
const (
	FoodTrailSteps      = 20 // segments, the trail holds Steps+1 points
	FoodTrailDelayStep  = 2  // frames between consecutive points appearing
	FoodTrailDecay      = 0.05
	FoodTrailColorAlpha = 0.6
)

// Psychedelic decay markers
const (
	DecayMarkerChance     = 0.3
	DecayMarkerDecayMin   = 0.005
	DecayMarkerDecayMax   = 0.015
	DecayMarkerHueShift   = 2.5 // ± degrees per frame
	DecayMarkerSizeJitter = 6.0
	DecayMarkerPatterns   = 3
)

// CRT overlay
const (
	ScanlineSpacing      = 4.0
	ScanlineAlpha        = 0.1
	ChromaFramePeriod    = 5
	ChromaAlpha          = 0.1
	ChromaOffset         = 1.0
	VignetteOuterFactor  = 0.7
	VignetteEdgeAlpha    = 0.375
	StaticNoiseChance    = 0.02
	StaticNoisePixels    = 10
	StaticNoisePixelSize = 1.0
	BloomGlowRadius      = 200.0
)

// Particle field
const (
	FieldParticleCount   = 50
	FieldVelocitySpread  = 0.25
	FieldSizeMin         = 1.0
	FieldSizeMax         = 4.0
	FieldAlphaMin        = 0.2
	FieldDamping         = 0.99
	FieldDrift           = 0.001
	FieldTimeStep        = 0.016
	FieldPointerRadius   = 100.0
	FieldPointerForce    = 0.01
	FieldConnectDistance = 80.0
	FieldConnectAlpha    = 0.3
	FieldGlowFactor      = 3.0
	FieldMeshSpacing     = 40.0
	FieldMeshSwing       = 10.0
	FieldMeshAlpha       = 0.1
	FieldScanlineSpacing = 3.0
	FieldScanlineAlpha   = 0.02
)

// Hover deconstruction
const (
	DeconstructRadius       = 100.0
	DeconstructThreadSpace  = 12.0
	DeconstructFade         = 0.015
	DeconstructMaxThreads   = 40
	DeconstructMaxRipples   = 8
	DeconstructMaxPixels    = 100
	DeconstructMaxHoles     = 15
	DeconstructSpawnChance  = 0.3
	DeconstructRippleChance = 0.2
	DeconstructPixelChance  = 0.15
	DeconstructHoleChance   = 0.1
	DeconstructGravity      = 0.1
	DeconstructHoleGrowth   = 0.2
	DeconstructFrayCount    = 3
	DeconstructFrayLength   = 8.0
)
