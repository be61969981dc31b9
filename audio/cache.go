package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// cueCache holds pre-rendered cue tones so playback never runs oscillators on the hot path
type cueCache struct {
	mu      sync.RWMutex
	rate    beep.SampleRate
	buffers [cueCount]*beep.Buffer
}

func newCueCache(rate beep.SampleRate) *cueCache {
	return &cueCache{rate: rate}
}

// preload renders every cue
func (c *cueCache) preload() {
	for cue := Cue(0); cue < cueCount; cue++ {
		c.get(cue)
	}
}

// get returns the buffer for cue, rendering on first use
func (c *cueCache) get(cue Cue) *beep.Buffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	buf := c.buffers[cue]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buffers[cue] != nil {
		return c.buffers[cue]
	}

	buf = beep.NewBuffer(beep.Format{SampleRate: c.rate, NumChannels: 2, Precision: 2})
	buf.Append(NewToneStreamer(cueTones[cue], c.rate))
	c.buffers[cue] = buf
	return buf
}

// streamer returns a fresh seeker over the rendered cue
func (c *cueCache) streamer(cue Cue) beep.Streamer {
	buf := c.get(cue)
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}
