package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/render"
)

// Driver owns the frame loop for a single engine: one Tick then one Render per frame, never reentrant
type Driver struct {
	engine  Engine
	surface render.Surface
	clock   Clock

	// Tick configuration
	tickInterval     time.Duration
	maxDelta         time.Duration
	lastTickTime     time.Time
	nextTickDeadline time.Time

	present func(frame uint64)

	// Serializes frames between the loop goroutine and Step
	frameMu   sync.Mutex
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// DriverOption configures a Driver
type DriverOption func(*Driver)

// WithClock replaces the monotonic clock, tests pass a MockTimeProvider
func WithClock(c Clock) DriverOption {
	return func(d *Driver) { d.clock = c }
}

// WithPresent installs a callback run after every rendered frame
func WithPresent(fn func(frame uint64)) DriverOption {
	return func(d *Driver) { d.present = fn }
}

// WithMaxDelta caps the dt handed to Tick after a stall
func WithMaxDelta(max time.Duration) DriverOption {
	return func(d *Driver) { d.maxDelta = max }
}

// NewDriver creates a stopped driver for eng rendering into surface
func NewDriver(eng Engine, surface render.Surface, tickInterval time.Duration, opts ...DriverOption) *Driver {
	d := &Driver{
		engine:       eng,
		surface:      surface,
		clock:        NewTimeProvider(),
		tickInterval: tickInterval,
		maxDelta:     tickInterval * 4,
		stopChan:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins the frame loop
func (d *Driver) Start() {
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		go d.loop()
	}
}

// Stop halts the frame loop and waits for the in-flight frame to finish
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		if d.running.CompareAndSwap(true, false) {
			close(d.stopChan)
			d.wg.Wait()
		}
	})
}

// Running reports whether the loop is active
func (d *Driver) Running() bool {
	return d.running.Load()
}

// Frames returns the number of completed frames
func (d *Driver) Frames() uint64 {
	return d.tickCount.Load()
}

// Step runs exactly one frame with the given dt, for headless hosts and tests
func (d *Driver) Step(dt time.Duration) {
	d.frame(dt)
}

// loop runs frames on the tick deadline with drift correction
func (d *Driver) loop() {
	defer d.wg.Done()

	now := d.clock.Now()
	d.lastTickTime = now
	d.nextTickDeadline = now.Add(d.tickInterval)

	timer := time.NewTimer(d.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-timer.C:
		}

		now := d.clock.Now()
		if !now.Before(d.nextTickDeadline) {
			dt := now.Sub(d.lastTickTime)
			d.lastTickTime = now
			d.frame(dt)

			d.nextTickDeadline = d.nextTickDeadline.Add(d.tickInterval)
			// Skip missed deadlines instead of bursting frames
			if now.Sub(d.nextTickDeadline) > d.tickInterval*2 {
				d.nextTickDeadline = now.Add(d.tickInterval)
			}
		}

		sleep := d.nextTickDeadline.Sub(d.clock.Now())
		if sleep < time.Millisecond {
			sleep = time.Millisecond
		}
		timer.Reset(sleep)
	}
}

// frame executes one update and render; panics are logged and the loop carries on
func (d *Driver) frame(dt time.Duration) {
	d.frameMu.Lock()
	defer d.frameMu.Unlock()

	if dt > d.maxDelta && d.maxDelta > 0 {
		dt = d.maxDelta
	}
	if dt < 0 {
		dt = 0
	}

	func() {
		defer core.Recover("tick")
		d.engine.Tick(dt)
	}()
	func() {
		defer core.Recover("render")
		d.engine.Render(d.surface)
	}()

	n := d.tickCount.Add(1)
	if d.present != nil {
		func() {
			defer core.Recover("present")
			d.present(n)
		}()
	}
}
