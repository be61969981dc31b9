package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/parameter"
)

// sink is the audio device; the speaker package in production, a fake in tests
type sink interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerSink struct{}

func (speakerSink) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerSink) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerSink) Lock()                   { speaker.Lock() }
func (speakerSink) Unlock()                 { speaker.Unlock() }

// Player plays cue tones through a single mixer attached to the speaker.
// Play only enqueues, a worker goroutine touches the device.
type Player struct {
	config *Config
	cache  *cueCache
	mixer  *beep.Mixer
	out    sink

	queue    chan Cue
	stopChan chan struct{}
	wg       sync.WaitGroup

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
	dropped    atomic.Uint64

	warnOnce sync.Once
}

// NewPlayer creates a stopped player, nil cfg uses defaults
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Player{
		config:   cfg,
		cache:    newCueCache(beep.SampleRate(cfg.SampleRate)),
		mixer:    &beep.Mixer{},
		out:      speakerSink{},
		queue:    make(chan Cue, parameter.AudioQueueSize),
		stopChan: make(chan struct{}),
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the device. A device failure leaves the player running in silent mode and is logged once
func (p *Player) Start() error {
	if !p.running.CompareAndSwap(false, true) {
		return errors.New("audio player already running")
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := p.out.Init(rate, rate.N(p.config.Buffer)); err != nil {
		p.disable(errors.Wrap(err, "speaker init"))
		return nil
	}

	p.cache.preload()
	p.out.Play(p.mixer)

	p.wg.Add(1)
	core.Go(p.worker)
	return nil
}

// disable switches to silent mode
func (p *Player) disable(err error) {
	p.silentMode.Store(true)
	p.warnOnce.Do(func() {
		core.Logger().Warn("audio disabled", "error", err)
	})
}

// worker moves queued cues into the mixer
func (p *Player) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopChan:
			return
		case c := <-p.queue:
			s := p.cache.streamer(c)
			if s == nil {
				continue
			}
			s = newVolume(s, p.config.volume(c))
			p.out.Lock()
			p.mixer.Add(s)
			p.out.Unlock()
		}
	}
}

// Stop silences the mixer and ends the worker, a stopped player cannot be restarted
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	if !p.silentMode.Load() {
		p.out.Lock()
		p.mixer.Clear()
		p.out.Unlock()
	}
}

// Play queues c without blocking, returns false when the cue was not queued
func (p *Player) Play(c Cue) bool {
	if !p.IsEnabled() {
		return false
	}
	if c < 0 || c >= cueCount {
		return false
	}
	select {
	case p.queue <- c:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Dropped returns the number of cues discarded on a full queue
func (p *Player) Dropped() uint64 {
	return p.dropped.Load()
}

// ToggleMute toggles mute state, returns true if now audible
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// SetMuted sets mute state
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsSilent reports whether the device failed to open
func (p *Player) IsSilent() bool {
	return p.silentMode.Load()
}

// IsEnabled returns true if running, unmuted and backed by a device
func (p *Player) IsEnabled() bool {
	return p.running.Load() && !p.muted.Load() && !p.silentMode.Load()
}
