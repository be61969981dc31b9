package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns every left-channel sample
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

// TestOscillatorLength verifies oscillators stop after their duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveSaw} {
		samples := drain(NewOscillator(220, duration, wave, rate))
		if len(samples) != rate.N(duration) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(duration), len(samples))
		}
		for i, v := range samples {
			if v < -1.0001 || v > 1.0001 {
				t.Fatalf("Wave %d: sample %d out of range: %f", wave, i, v)
			}
		}
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(880, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorTriangle verifies the triangle peaks at half period
func TestOscillatorTriangle(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(NewOscillator(10, time.Second, WaveTriangle, rate))

	// 100 samples per period: -1 at phase 0, +1 at phase 0.5
	if math.Abs(samples[0]+1) > 1e-9 {
		t.Errorf("Expected -1 at phase 0, got %f", samples[0])
	}
	if math.Abs(samples[50]-1) > 1e-9 {
		t.Errorf("Expected 1 at phase 0.5, got %f", samples[50])
	}
}

// TestDecayEnvelope verifies the exponential gain endpoints and monotonic fall
func TestDecayEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 200 * time.Millisecond
	osc := NewOscillator(10, duration, WaveSquare, rate)
	samples := drain(NewDecay(osc, duration, 0.1, 0.01, rate))

	if len(samples) != 200 {
		t.Fatalf("Expected 200 samples, got %d", len(samples))
	}
	first := math.Abs(samples[0])
	last := math.Abs(samples[len(samples)-1])
	if math.Abs(first-0.1) > 1e-9 {
		t.Errorf("Expected starting gain 0.1, got %f", first)
	}
	if math.Abs(last-0.01) > 1e-9 {
		t.Errorf("Expected final gain 0.01, got %f", last)
	}

	// Midpoint of an exponential ramp is the geometric mean
	mid := math.Abs(samples[0]) * math.Pow(0.1, 100.0/199.0)
	if math.Abs(math.Abs(samples[100])-mid) > 1e-9 {
		t.Errorf("Expected gain %f at midpoint, got %f", mid, math.Abs(samples[100]))
	}

	for i := 1; i < len(samples); i++ {
		if math.Abs(samples[i]) > math.Abs(samples[i-1])+1e-12 {
			t.Fatalf("Gain rose at sample %d", i)
		}
	}
}

// TestCueTones verifies the cue table
func TestCueTones(t *testing.T) {
	tests := []struct {
		cue  Cue
		freq float64
		dur  time.Duration
		wave WaveType
	}{
		{CueMovement, 220, 100 * time.Millisecond, WaveTriangle},
		{CueProximity, 440, 200 * time.Millisecond, WaveSine},
		{CueFound, 880, 500 * time.Millisecond, WaveSquare},
		{CueBloom, 1320, time.Second, WaveSine},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			tone, ok := ToneFor(tt.cue)
			if !ok {
				t.Fatal("Expected cue to have a tone")
			}
			if tone.Frequency != tt.freq || tone.Duration != tt.dur || tone.Wave != tt.wave {
				t.Errorf("Expected %v/%v/%d, got %v/%v/%d", tt.freq, tt.dur, tt.wave, tone.Frequency, tone.Duration, tone.Wave)
			}
		})
	}

	if _, ok := ToneFor(cueCount); ok {
		t.Error("Expected out-of-range cue to have no tone")
	}
}

// TestCacheRendersOnce verifies buffers are reused and streams are independent
func TestCacheRendersOnce(t *testing.T) {
	rate := beep.SampleRate(8000)
	c := newCueCache(rate)

	a := c.get(CueFound)
	b := c.get(CueFound)
	if a != b {
		t.Error("Expected cached buffer to be reused")
	}
	if a.Len() != rate.N(500*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(500*time.Millisecond), a.Len())
	}

	s1 := drain(c.streamer(CueFound))
	s2 := drain(c.streamer(CueFound))
	if len(s1) != len(s2) || len(s1) == 0 {
		t.Errorf("Expected identical independent streams, got %d and %d samples", len(s1), len(s2))
	}

	if c.streamer(Cue(-1)) != nil {
		t.Error("Expected nil streamer for invalid cue")
	}
}
