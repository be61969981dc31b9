package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioQueueSize bounds pending cues, further cues are dropped
	AudioQueueSize = 16

	AudioMasterVolume = 0.8
)

// Cue envelope: gain decays exponentially from start to end over the cue duration
const (
	AudioGainStart = 0.1
	AudioGainEnd   = 0.01
)

// Movement cue
const (
	MovementCueFrequency = 220.0
	MovementCueDuration  = 100 * time.Millisecond
)

// Proximity cue
const (
	ProximityCueFrequency = 440.0
	ProximityCueDuration  = 200 * time.Millisecond
)

// Found cue
const (
	FoundCueFrequency = 880.0
	FoundCueDuration  = 500 * time.Millisecond
)

// Bloom cue
const (
	BloomCueFrequency = 1320.0
	BloomCueDuration  = 1000 * time.Millisecond
)
