package audio

import (
	"time"

	"github.com/lixenwraith/weave/parameter"
)

// Config holds player settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	Buffer       time.Duration
	// Volumes scales individual cues, missing entries play at 1.0
	Volumes map[Cue]float64
}

// DefaultConfig returns the player defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		Buffer:       parameter.AudioBufferDuration,
		Volumes:      make(map[Cue]float64),
	}
}

// volume returns the effective gain for c
func (cfg *Config) volume(c Cue) float64 {
	v := cfg.MasterVolume
	if cv, ok := cfg.Volumes[c]; ok {
		v *= cv
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
