package audio

import (
	"errors"
	"time"

	"github.com/lixenwraith/weave/parameter"
)

// Cue identifies a short feedback tone
type Cue int

const (
	CueMovement  Cue = iota // Player started moving
	CueProximity            // Snakes are close together
	CueFound                // Food revealed
	CueBloom                // Snakes met over the food
	cueCount
)

// String returns the cue name used in logs and config keys
func (c Cue) String() string {
	switch c {
	case CueMovement:
		return "movement"
	case CueProximity:
		return "proximity"
	case CueFound:
		return "found"
	case CueBloom:
		return "bloom"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// Tone describes a single enveloped oscillator note
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Wave      WaveType
}

// cueTones maps every cue to its tone
var cueTones = [cueCount]Tone{
	CueMovement:  {parameter.MovementCueFrequency, parameter.MovementCueDuration, WaveTriangle},
	CueProximity: {parameter.ProximityCueFrequency, parameter.ProximityCueDuration, WaveSine},
	CueFound:     {parameter.FoundCueFrequency, parameter.FoundCueDuration, WaveSquare},
	CueBloom:     {parameter.BloomCueFrequency, parameter.BloomCueDuration, WaveSine},
}

// ToneFor returns the tone played for c
func ToneFor(c Cue) (Tone, bool) {
	if c < 0 || c >= cueCount {
		return Tone{}, false
	}
	return cueTones[c], true
}

// Sentinel errors
var (
	ErrUnknownCue     = errors.New("unknown audio cue")
	ErrPlayerDisabled = errors.New("audio player disabled")
)
