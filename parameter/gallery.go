package parameter

import "time"

// Gallery phase durations
const (
	GalleryFirstDelay    = 5 * time.Second
	GalleryCycleDelay    = 3 * time.Second
	GalleryRetryDelay    = 5 * time.Second
	GalleryShowDuration  = 3 * time.Second
	GalleryDecayDuration = 8 * time.Second
	GalleryRelaxDuration = 4 * time.Second
)

// Decay sub-phase boundaries as fractions of GalleryDecayDuration
const (
	GalleryDecayEmergeEnd    = 0.3
	GalleryDecayIntegrateEnd = 0.7

	GalleryOpacityExponent   = 1.5
	GalleryEmergenceExponent = 0.8
	GalleryFadeExponent      = 0.5

	// GalleryIntegrateTarget is transformation progress reached at GalleryDecayIntegrateEnd
	GalleryIntegrateTarget = 0.5
)

// Fabric dimming while the image is on screen
const (
	GalleryFabricAlphaBase = 0.2
	GalleryFabricAlphaGain = 0.6
)

// Per-image detection threshold range
const (
	GalleryThresholdMin = 15.0
	GalleryThresholdMax = 35.0
)

// GalleryResultBuffer sizes the load and detection completion channels
const GalleryResultBuffer = 2
