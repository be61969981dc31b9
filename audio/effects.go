package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/weave/parameter"
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a bounded oscillator; sine tones come from beep's generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	if wave == WaveSine {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			return beep.Take(samples, sine)
		}
	}
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies an exponential gain ramp from start to end across total samples
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	ratio    float64 // end/start
}

// NewDecay shapes s with a gain falling exponentially from start to end over duration
func NewDecay(s beep.Streamer, duration time.Duration, start, end float64, rate beep.SampleRate) beep.Streamer {
	ratio := 1.0
	if start > 0 && end > 0 {
		ratio = end / start
	}
	return &decay{
		streamer: s,
		total:    rate.N(duration),
		start:    start,
		ratio:    ratio,
	}
}

// gain returns the envelope value at sample i
func (d *decay) gain(i int) float64 {
	if d.total <= 1 {
		return d.start
	}
	t := float64(i) / float64(d.total-1)
	if t > 1 {
		t = 1
	}
	return d.start * math.Pow(d.ratio, t)
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, i > 0
		}
		g := d.gain(d.position)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewToneStreamer renders tone with the cue envelope
func NewToneStreamer(tone Tone, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(tone.Frequency, tone.Duration, tone.Wave, rate)
	return NewDecay(osc, tone.Duration, parameter.AudioGainStart, parameter.AudioGainEnd, rate)
}
