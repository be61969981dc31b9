package gallery

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/edge"
	"github.com/lixenwraith/weave/engine/fsm"
	"github.com/lixenwraith/weave/fabric"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/vmath"
)

// loadResult carries a finished image decode back to the tick goroutine
type loadResult struct {
	gen   uint64
	index int
	img   image.Image
	err   error
}

// detectResult carries finished edge extraction back to the tick goroutine
type detectResult struct {
	gen    uint64
	result edge.Result
}

// Gallery cycles images over a fabric: each image is shown, decays into its
// traced edges, pulls the fabric toward them, then relaxes back.
// It implements engine.Engine, engine.PointerHandler and engine.Resizer.
type Gallery struct {
	fabric   *fabric.Fabric
	source   edge.Source
	detector *edge.Detector
	spawn    func(func())

	seed uint64
	rng  *vmath.FastRand

	machine *fsm.Machine[Phase, *Gallery]
	timing  Timing

	ctx    context.Context
	cancel context.CancelFunc

	loads      chan loadResult
	detections chan detectResult
	gen        uint64 // bumped per load; results from older generations are dropped

	width, height int

	index     int
	img       image.Image
	rect      edge.Rect
	threshold float64
	result    *edge.Result

	opacity   float64 // image opacity
	emergence float64
	progress  float64 // fabric transformation progress

	cycles   int
	failures int
}

// Timing is the phase duration table
type Timing struct {
	FirstDelay time.Duration
	CycleDelay time.Duration
	RetryDelay time.Duration
	Show       time.Duration
	Decay      time.Duration
	Relax      time.Duration
}

// DefaultTiming returns the standard phase durations
func DefaultTiming() Timing {
	return Timing{
		FirstDelay: parameter.GalleryFirstDelay,
		CycleDelay: parameter.GalleryCycleDelay,
		RetryDelay: parameter.GalleryRetryDelay,
		Show:       parameter.GalleryShowDuration,
		Decay:      parameter.GalleryDecayDuration,
		Relax:      parameter.GalleryRelaxDuration,
	}
}

// Option configures a Gallery
type Option func(*Gallery)

// WithTiming overrides the phase duration table
func WithTiming(t Timing) Option {
	return func(g *Gallery) { g.timing = t }
}

// WithDetector overrides the edge detector
func WithDetector(d *edge.Detector) Option {
	return func(g *Gallery) { g.detector = d }
}

// WithRunner overrides how background extraction is started, the default runs it on its own goroutine
func WithRunner(spawn func(func())) Option {
	return func(g *Gallery) { g.spawn = spawn }
}

// WithFabric supplies the fabric to drive instead of a fresh one
func WithFabric(f *fabric.Fabric) Option {
	return func(g *Gallery) { g.fabric = f }
}

// New creates a gallery over source; seed drives placement, thresholds and fabric jitter
func New(source edge.Source, seed uint64, opts ...Option) *Gallery {
	g := &Gallery{
		source:     source,
		seed:       seed,
		timing:     DefaultTiming(),
		spawn:      core.Go,
		loads:      make(chan loadResult, parameter.GalleryResultBuffer),
		detections: make(chan detectResult, parameter.GalleryResultBuffer),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.fabric == nil {
		g.fabric = fabric.New(seed)
	}
	if g.detector == nil {
		g.detector = edge.NewDetector()
	}
	g.machine = g.buildMachine()
	return g
}

func (g *Gallery) buildMachine() *fsm.Machine[Phase, *Gallery] {
	m := fsm.NewMachine[Phase, *Gallery]()
	m.AddState(PhaseIdle, fsm.State[Phase, *Gallery]{
		Name:     PhaseIdle.String(),
		Duration: g.timing.CycleDelay,
		Next:     PhaseLoading,
		OnEnter:  (*Gallery).enterIdle,
	})
	m.AddState(PhaseLoading, fsm.State[Phase, *Gallery]{
		Name:    PhaseLoading.String(),
		OnEnter: (*Gallery).enterLoading,
	})
	m.AddState(PhaseShowing, fsm.State[Phase, *Gallery]{
		Name:     PhaseShowing.String(),
		Duration: g.timing.Show,
		Next:     PhaseDecaying,
		OnEnter:  (*Gallery).enterShowing,
	})
	m.AddState(PhaseDecaying, fsm.State[Phase, *Gallery]{
		Name:     PhaseDecaying.String(),
		Duration: g.timing.Decay,
		Next:     PhaseRelaxing,
		OnUpdate: (*Gallery).updateDecaying,
	})
	m.AddState(PhaseRelaxing, fsm.State[Phase, *Gallery]{
		Name:     PhaseRelaxing.String(),
		Duration: g.timing.Relax,
		Next:     PhaseIdle,
		OnEnter:  (*Gallery).enterRelaxing,
		OnUpdate: (*Gallery).updateRelaxing,
		OnExit:   (*Gallery).exitRelaxing,
	})
	return m
}

// Init lays out the fabric and schedules the first load
func (g *Gallery) Init(w, h int) {
	if g.cancel != nil {
		g.cancel()
	}
	g.ctx, g.cancel = context.WithCancel(context.Background())
	g.gen++
	g.drain()

	g.width, g.height = w, h
	g.rng = vmath.NewFastRand(g.seed)
	g.index, g.cycles, g.failures = 0, 0, 0
	g.fabric.Init(w, h)

	if err := g.machine.Validate(); err != nil {
		core.Logger().Error("gallery machine invalid", "error", err)
	}
	_ = g.machine.Reset(g, PhaseIdle)

	if g.source == nil || g.source.Len() == 0 {
		// Nothing to show, the fabric runs on its own
		g.machine.SetHold(0)
		core.Logger().Info("gallery has no images")
		return
	}
	g.machine.SetHold(g.timing.FirstDelay)
}

// Tick applies finished background work, advances the phase machine, then the fabric
func (g *Gallery) Tick(dt time.Duration) {
	from := g.machine.Active()
	g.collect()
	// A phase entered while collecting starts its clock on the next tick
	elapsed := dt
	if g.machine.Active() != from {
		elapsed = 0
	}
	g.machine.Update(g, elapsed)

	g.fabric.SetTransformation(g.progress)
	g.fabric.SetEmergence(g.emergence)
	g.fabric.SetOpacity(g.fabricOpacity())
	g.fabric.Tick(dt)
}

// collect drains completion channels without blocking
func (g *Gallery) collect() {
	for {
		select {
		case r := <-g.loads:
			g.onLoaded(r)
		case r := <-g.detections:
			g.onDetected(r)
		default:
			return
		}
	}
}

// drain discards anything queued by a previous run
func (g *Gallery) drain() {
	for {
		select {
		case <-g.loads:
		case <-g.detections:
		default:
			return
		}
	}
}

func (g *Gallery) onLoaded(r loadResult) {
	if r.gen != g.gen || g.machine.Active() != PhaseLoading {
		return
	}
	if r.err == nil && r.img == nil {
		r.err = errors.Wrapf(edge.ErrNoPixels, "source returned no image for %d", r.index)
	}
	if r.err != nil {
		g.failures++
		core.Logger().Warn("image load failed, skipping", "index", r.index, "error", r.err)
		g.advance()
		g.machine.TransitionFor(g, PhaseIdle, g.timing.RetryDelay)
		return
	}

	b := r.img.Bounds()
	g.img = r.img
	g.rect = edge.Placement(b.Dx(), b.Dy(), float64(g.width), float64(g.height), g.rng)
	g.threshold = g.rng.Range(parameter.GalleryThresholdMin, parameter.GalleryThresholdMax)
	core.Logger().Debug("image loaded", "index", r.index, "bounds", b, "threshold", g.threshold)

	g.startDetection(r.img)
	g.machine.Transition(g, PhaseShowing)
}

func (g *Gallery) startDetection(img image.Image) {
	ctx, gen := g.ctx, g.gen
	opts := edge.Options{
		Detector:  g.detector,
		Threshold: g.threshold,
		Display:   g.rect,
		CanvasW:   float64(g.width),
		CanvasH:   float64(g.height),
		Rand:      vmath.NewFastRand(g.rng.Next()),
	}
	out := g.detections
	g.spawn(func() {
		res := edge.Extract(img, opts)
		select {
		case out <- detectResult{gen: gen, result: res}:
		case <-ctx.Done():
		}
	})
}

func (g *Gallery) onDetected(r detectResult) {
	if r.gen != g.gen {
		return
	}
	switch g.machine.Active() {
	case PhaseShowing, PhaseDecaying, PhaseRelaxing:
	default:
		return
	}
	res := r.result
	g.result = &res
	g.fabric.SetEdges(res.Chains)
	core.Logger().Debug("edge threads ready", "kind", res.Kind, "chains", len(res.Chains), "points", res.PointCount())
}

// advance moves to the next image index cyclically
func (g *Gallery) advance() {
	if n := g.source.Len(); n > 0 {
		g.index = (g.index + 1) % n
	}
}

// --- Phase actions ---

func (g *Gallery) enterIdle() {
	g.img = nil
	g.result = nil
	g.opacity, g.emergence, g.progress = 0, 0, 0
	g.fabric.SetEdges(nil)
}

func (g *Gallery) enterLoading() {
	g.gen++
	gen, index, out := g.gen, g.index, g.loads
	g.source.Load(g.ctx, index, func(img image.Image, err error) {
		select {
		case out <- loadResult{gen: gen, index: index, img: img, err: err}:
		default:
			core.Logger().Warn("load result dropped", "index", index)
		}
	})
}

func (g *Gallery) enterShowing() {
	g.opacity, g.emergence, g.progress = 1, 0, 0
}

// updateDecaying runs the three decay sub-phases over the phase's own span
func (g *Gallery) updateDecaying(elapsed time.Duration) {
	g.opacity, g.emergence, g.progress = DecayCurve(vmath.Progress(float64(elapsed), float64(g.timing.Decay)))
}

func (g *Gallery) enterRelaxing() {
	g.opacity, g.emergence = 0, 0
}

func (g *Gallery) updateRelaxing(elapsed time.Duration) {
	g.progress = RelaxCurve(vmath.Progress(float64(elapsed), float64(g.timing.Relax)))
}

func (g *Gallery) exitRelaxing() {
	g.cycles++
	g.advance()
	core.Logger().Debug("gallery cycle complete", "cycles", g.cycles, "next", g.index)
}

// fabricOpacity dims threads behind the image and restores them while relaxing
func (g *Gallery) fabricOpacity() float64 {
	switch g.machine.Active() {
	case PhaseShowing, PhaseDecaying:
		return parameter.GalleryFabricAlphaBase + g.progress*parameter.GalleryFabricAlphaGain
	case PhaseRelaxing:
		top := parameter.GalleryFabricAlphaBase + parameter.GalleryFabricAlphaGain
		return vmath.Lerp(top, 1, vmath.EaseOutCubic(g.machine.Progress()))
	default:
		return 1
	}
}

// Dispose cancels background work; late completions are ignored
func (g *Gallery) Dispose() {
	if g.cancel != nil {
		g.cancel()
	}
	g.gen++
	g.drain()
	g.img = nil
	g.result = nil
	g.fabric.Dispose()
}

// --- Input ---

func (g *Gallery) PointerMove(x, y float64) { g.fabric.PointerMove(x, y) }
func (g *Gallery) PointerEnter()            { g.fabric.PointerEnter() }
func (g *Gallery) PointerLeave()            { g.fabric.PointerLeave() }

// Resize relays the new canvas to the fabric; a shown image keeps its placement
func (g *Gallery) Resize(w, h int) {
	g.width, g.height = w, h
	g.fabric.Resize(w, h)
}

// --- Inspection ---

func (g *Gallery) Phase() Phase               { return g.machine.Active() }
func (g *Gallery) Index() int                 { return g.index }
func (g *Gallery) Cycles() int                { return g.cycles }
func (g *Gallery) Failures() int              { return g.failures }
func (g *Gallery) ImageOpacity() float64      { return g.opacity }
func (g *Gallery) Emergence() float64         { return g.emergence }
func (g *Gallery) Transformation() float64    { return g.progress }
func (g *Gallery) Threshold() float64         { return g.threshold }
func (g *Gallery) Placement() edge.Rect       { return g.rect }
func (g *Gallery) Fabric() *fabric.Fabric     { return g.fabric }
func (g *Gallery) TimeInPhase() time.Duration { return g.machine.TimeInState() }

// Result returns the current edge extraction, nil before it lands
func (g *Gallery) Result() *edge.Result { return g.result }
