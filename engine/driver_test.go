package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/weave/render"
)

// countingEngine records lifecycle calls and optionally panics on tick
type countingEngine struct {
	ticks    atomic.Int32
	renders  atomic.Int32
	lastDt   atomic.Int64
	totalDt  atomic.Int64
	panicOn  int32
	disposed bool
}

func (e *countingEngine) Init(w, h int) {}
func (e *countingEngine) Tick(dt time.Duration) {
	n := e.ticks.Add(1)
	e.lastDt.Store(int64(dt))
	e.totalDt.Add(int64(dt))
	if e.panicOn != 0 && n == e.panicOn {
		panic("tick failure")
	}
}
func (e *countingEngine) Render(s render.Surface) { e.renders.Add(1) }
func (e *countingEngine) Dispose()                { e.disposed = true }

func TestDriverStepRunsTickThenRender(t *testing.T) {
	eng := &countingEngine{}
	var presented []uint64
	d := NewDriver(eng, render.NewRecorder(10, 10), 16*time.Millisecond,
		WithPresent(func(frame uint64) { presented = append(presented, frame) }))

	for i := 0; i < 3; i++ {
		d.Step(16 * time.Millisecond)
	}

	if eng.ticks.Load() != 3 || eng.renders.Load() != 3 {
		t.Errorf("Expected 3 ticks and renders, got %d/%d", eng.ticks.Load(), eng.renders.Load())
	}
	if d.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", d.Frames())
	}
	if len(presented) != 3 || presented[2] != 3 {
		t.Errorf("Expected present for frames 1..3, got %v", presented)
	}
}

func TestDriverSurvivesPanickingTick(t *testing.T) {
	eng := &countingEngine{panicOn: 2}
	d := NewDriver(eng, render.NewRecorder(10, 10), 16*time.Millisecond)

	for i := 0; i < 4; i++ {
		d.Step(16 * time.Millisecond)
	}

	if eng.ticks.Load() != 4 {
		t.Errorf("Expected ticks to continue after panic, got %d", eng.ticks.Load())
	}
	if eng.renders.Load() != 4 {
		t.Errorf("Expected render after panicking tick, got %d", eng.renders.Load())
	}
}

func TestDriverClampsDelta(t *testing.T) {
	eng := &countingEngine{}
	d := NewDriver(eng, render.NewRecorder(10, 10), 10*time.Millisecond, WithMaxDelta(30*time.Millisecond))

	d.Step(time.Second)
	if got := time.Duration(eng.lastDt.Load()); got != 30*time.Millisecond {
		t.Errorf("Expected clamped dt 30ms, got %v", got)
	}
	d.Step(-time.Second)
	if got := time.Duration(eng.lastDt.Load()); got != 0 {
		t.Errorf("Expected negative dt clamped to 0, got %v", got)
	}
}

func TestDriverStartStop(t *testing.T) {
	eng := &countingEngine{}
	d := NewDriver(eng, render.NewRecorder(10, 10), 2*time.Millisecond)

	d.Start()
	d.Start() // idempotent
	if !d.Running() {
		t.Fatal("Expected driver running")
	}

	deadline := time.Now().Add(2 * time.Second)
	for eng.ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	d.Stop()
	d.Stop() // idempotent
	if d.Running() {
		t.Error("Expected driver stopped")
	}

	after := eng.ticks.Load()
	if after < 3 {
		t.Fatalf("Expected at least 3 ticks before stop, got %d", after)
	}
	time.Sleep(20 * time.Millisecond)
	if eng.ticks.Load() != after {
		t.Error("Expected no ticks after Stop returned")
	}
}

func TestDriverFollowsClock(t *testing.T) {
	eng := &countingEngine{}
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDriver(eng, render.NewRecorder(10, 10), 10*time.Millisecond, WithClock(clock))

	d.Start()
	defer d.Stop()

	// Frozen clock: the deadline never arrives
	time.Sleep(40 * time.Millisecond)
	if n := eng.ticks.Load(); n != 0 {
		t.Fatalf("Expected no ticks on a frozen clock, got %d", n)
	}

	clock.Advance(30 * time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for eng.ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	// Let the loop catch up on any remaining deadlines
	time.Sleep(40 * time.Millisecond)

	if got := time.Duration(eng.totalDt.Load()); got != 30*time.Millisecond {
		t.Errorf("Expected ticks to sum to the advanced 30ms, got %v", got)
	}
}
