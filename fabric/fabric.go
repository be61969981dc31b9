package fabric

import (
	"math"
	"time"

	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/edge"
	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/vmath"
)

// Fabric simulates the woven thread grid and its pull toward traced image edges.
// It implements engine.Engine, engine.PointerHandler and engine.Resizer.
type Fabric struct {
	width, height int

	seed uint64
	rng  *vmath.FastRand

	horizontal []Thread
	vertical   []Thread

	time        float64
	colorTime   float64
	paletteTime float64
	palette     int

	pointer vmath.Point
	hovered bool

	edges     []edge.Chain
	morph     morphIndex
	progress  float64 // transformation progress in [0, 1]
	emergence float64 // edge thread visibility in [0, 1]
	opacity   float64 // thread layer opacity in [0, 1]

	// PointerGlow enables the radial halo under the pointer while hovered
	PointerGlow bool
}

// New creates a fabric whose jitter replays from seed
func New(seed uint64) *Fabric {
	return &Fabric{seed: seed, opacity: 1}
}

// Init lays out threads for a w×h canvas and resets all clocks
func (f *Fabric) Init(w, h int) {
	f.rng = vmath.NewFastRand(f.seed)
	f.time, f.colorTime, f.paletteTime = 0, 0, 0
	f.palette = 0
	f.pointer = vmath.Point{X: float64(w) / 2, Y: float64(h) / 2}
	f.hovered = false
	f.progress, f.emergence, f.opacity = 0, 0, 1
	f.edges = nil
	f.morph = morphIndex{}
	f.layout(w, h)
}

// Resize rebuilds the thread grid, keeping clocks, palette and edges
func (f *Fabric) Resize(w, h int) {
	if w == f.width && h == f.height {
		return
	}
	if f.rng == nil {
		f.rng = vmath.NewFastRand(f.seed)
	}
	f.layout(w, h)
	core.Logger().Debug("fabric resized", "width", w, "height", h, "threads", len(f.horizontal)+len(f.vertical))
}

func (f *Fabric) layout(w, h int) {
	f.width, f.height = w, h
	f.horizontal = f.horizontal[:0]
	f.vertical = f.vertical[:0]

	spacing := parameter.FabricThreadSpacing
	for i, y := 0, 0.0; y < float64(h)+spacing; i, y = i+1, y+spacing {
		f.horizontal = append(f.horizontal, newThread(Horizontal, i, y, float64(w), f.rng))
	}
	for i, x := 0, 0.0; x < float64(w)+spacing; i, x = i+1, x+spacing {
		f.vertical = append(f.vertical, newThread(Vertical, i, x, float64(h), f.rng))
	}
	f.updateThreads()
}

// Tick advances the simulation clocks by one frame step and repositions every point.
// The clocks advance per tick, so dt only matters to callers pacing the driver.
func (f *Fabric) Tick(_ time.Duration) {
	f.time += parameter.FabricTimeStep
	f.colorTime += parameter.FabricColorStep
	f.paletteTime += parameter.FabricPaletteStep

	if f.paletteTime > parameter.FabricPaletteRotate {
		f.palette = (f.palette + 1) % len(Palettes)
		f.paletteTime = 0
		core.Logger().Debug("palette rotated", "palette", Palettes[f.palette].Name)
	}

	f.updateThreads()
}

func (f *Fabric) updateThreads() {
	pal := f.Palette()
	for i := range f.horizontal {
		f.updateThread(&f.horizontal[i], pal)
	}
	for i := range f.vertical {
		f.updateThread(&f.vertical[i], pal)
	}
}

func (f *Fabric) updateThread(t *Thread, pal Palette) {
	t.Color = t.ColorFor(pal, f.colorTime)

	morphing := f.progress > 0 && f.morph.len() > 0
	for i := range t.Points {
		p := &t.Points[i]

		wave := math.Sin(f.time*parameter.FabricWaveFrequency+t.Phase+float64(i)*parameter.FabricWavePointPhase) * parameter.FabricWaveAmplitude
		p.Pos = t.displace(p.Base, wave+f.pointerPush(t, p.Base))

		if morphing {
			p.Pos = p.Pos.Add(f.morph.displacement(p.Base).Scale(f.progress * parameter.FabricMorphGain))
		}
	}
}

// pointerPush returns the minor-axis push away from the pointer for a base point
func (f *Fabric) pointerPush(t *Thread, base vmath.Point) float64 {
	if !f.hovered {
		return 0
	}
	d := base.Dist(f.pointer)
	if d >= parameter.FabricPointerRadius {
		return 0
	}
	push := (1 - d/parameter.FabricPointerRadius) * parameter.FabricPointerPush
	if t.minor(base.Sub(f.pointer)) < 0 {
		return -push
	}
	return push
}

// Dispose releases thread and edge storage
func (f *Fabric) Dispose() {
	f.horizontal = nil
	f.vertical = nil
	f.edges = nil
	f.morph = morphIndex{}
}

// --- Pointer input ---

func (f *Fabric) PointerMove(x, y float64) {
	f.pointer = vmath.Point{X: x, Y: y}
}

func (f *Fabric) PointerEnter() { f.hovered = true }

func (f *Fabric) PointerLeave() { f.hovered = false }

// --- Gallery coupling ---

// SetEdges replaces the edge threads wholesale, nil clears them
func (f *Fabric) SetEdges(chains []edge.Chain) {
	f.edges = chains
	f.morph = newMorphIndex(chains)
}

// Edges returns the current edge threads
func (f *Fabric) Edges() []edge.Chain { return f.edges }

// SetTransformation sets how far points are pulled toward edges, clamped to [0, 1]
func (f *Fabric) SetTransformation(tp float64) { f.progress = vmath.Clamp01(tp) }

func (f *Fabric) Transformation() float64 { return f.progress }

// SetEmergence sets edge thread visibility, clamped to [0, 1]
func (f *Fabric) SetEmergence(e float64) { f.emergence = vmath.Clamp01(e) }

func (f *Fabric) Emergence() float64 { return f.emergence }

// SetOpacity dims the thread layer, clamped to [0, 1]
func (f *Fabric) SetOpacity(a float64) { f.opacity = vmath.Clamp01(a) }

func (f *Fabric) Opacity() float64 { return f.opacity }

// --- Inspection ---

// Palette returns the active palette
func (f *Fabric) Palette() Palette { return Palettes[f.palette] }

// PaletteIndex returns the index of the active palette in Palettes
func (f *Fabric) PaletteIndex() int { return f.palette }

// Clocks returns the simulation, color and palette clocks
func (f *Fabric) Clocks() (t, color, palette float64) {
	return f.time, f.colorTime, f.paletteTime
}

// Threads returns horizontal and vertical threads, owned by the fabric
func (f *Fabric) Threads() (horizontal, vertical []Thread) {
	return f.horizontal, f.vertical
}

// PointCount returns the total number of thread points
func (f *Fabric) PointCount() int {
	n := 0
	for i := range f.horizontal {
		n += len(f.horizontal[i].Points)
	}
	for i := range f.vertical {
		n += len(f.vertical[i].Points)
	}
	return n
}

// Size returns the canvas size the grid was laid out for
func (f *Fabric) Size() (w, h int) { return f.width, f.height }
