package effects

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
	"github.com/lixenwraith/weave/vmath"
)

// threadTints are the undyed fiber colors pulled out of the picture
var threadTints = []render.Color{
	render.RGBA8(200, 180, 160, 1),
	render.RGBA8(180, 160, 140, 1),
	render.RGBA8(220, 200, 180, 1),
	render.RGBA8(160, 140, 120, 1),
	render.RGBA8(240, 220, 200, 1),
}

var frayColor = render.RGBA8(160, 140, 120, 1)

// LooseThread is a fiber radiating from the pointer that unravels and fades
type LooseThread struct {
	Base   []vmath.Point
	Offset []vmath.Point
	Angle  float64
	Speed  float64
	Life   float64
	Color  render.Color
	Width  float64
}

// Hole is a soft-edged gap erased through the picture
type Hole struct {
	Pos       vmath.Point
	Radius    float64
	MaxRadius float64
	Life      float64
}

// Ripple is an expanding ring darkening the picture in multiply mode
type Ripple struct {
	Pos       vmath.Point
	Radius    float64
	MaxRadius float64
	Intensity float64
	Life      float64
	Speed     float64
}

// Fleck is an image pixel knocked loose, falling under gravity
type Fleck struct {
	Pos      vmath.Point
	Vel      vmath.Point
	Size     float64
	Color    render.Color
	Life     float64
	Rotation float64
	Spin     float64
}

// Deconstruct unravels a picture around the pointer while it hovers
type Deconstruct struct {
	seed  uint64
	rng   *vmath.FastRand
	w, h  float64
	img   image.Image
	clock float64

	Threads []LooseThread
	Holes   []Hole
	Ripples []Ripple
	Flecks  []Fleck

	pointer vmath.Point
	active  bool
}

// NewDeconstruct creates the effect over img; a nil image disables flecks
func NewDeconstruct(img image.Image, seed uint64) *Deconstruct {
	return &Deconstruct{img: img, seed: seed}
}

func (d *Deconstruct) Init(w, h int) {
	d.rng = vmath.NewFastRand(d.seed)
	d.w, d.h = float64(w), float64(h)
	d.clock = 0
	d.active = false
	d.Threads = d.Threads[:0]
	d.Holes = d.Holes[:0]
	d.Ripples = d.Ripples[:0]
	d.Flecks = d.Flecks[:0]
}

func (d *Deconstruct) Resize(w, h int) {
	d.w, d.h = float64(w), float64(h)
}

// SetImage swaps the picture being unraveled
func (d *Deconstruct) SetImage(img image.Image) { d.img = img }

func (d *Deconstruct) PointerEnter() { d.active = true }
func (d *Deconstruct) PointerLeave() { d.active = false }

// PointerMove records the pointer and, while active, tears at the picture
func (d *Deconstruct) PointerMove(x, y float64) {
	d.pointer = vmath.Point{X: x, Y: y}
	if d.active && d.rng != nil {
		d.tear()
	}
}

// Active reports whether the pointer is over the picture
func (d *Deconstruct) Active() bool { return d.active }

// tear spawns one round of effects at the pointer, throttled by chance
func (d *Deconstruct) tear() {
	if d.rng.Float64() > parameter.DeconstructSpawnChance {
		return
	}
	d.spawnRipple()
	d.spawnFlecks()
	d.spawnHole()

	count := int(d.rng.Range(3, 9))
	for i := 0; i < count; i++ {
		angle := vmath.TwoPi/float64(count)*float64(i) + d.rng.Float64()*0.5
		length := d.rng.Float64()*parameter.DeconstructRadius + 20
		segs := int(length / parameter.DeconstructThreadSpace)
		t := LooseThread{
			Base:   make([]vmath.Point, segs),
			Offset: make([]vmath.Point, segs),
			Angle:  angle,
			Speed:  d.rng.Range(1, 3),
			Life:   1,
			Color:  threadTints[d.rng.Intn(len(threadTints))],
			Width:  d.rng.Range(1, 3),
		}
		for j := 0; j < segs; j++ {
			dist := float64(j) / float64(segs) * length
			t.Base[j] = vmath.Point{X: d.pointer.X + math.Cos(angle)*dist, Y: d.pointer.Y + math.Sin(angle)*dist}
		}
		d.Threads = append(d.Threads, t)
	}
	d.Threads = keepLast(d.Threads, parameter.DeconstructMaxThreads)
}

func (d *Deconstruct) spawnRipple() {
	if d.rng.Float64() > parameter.DeconstructRippleChance {
		return
	}
	d.Ripples = append(d.Ripples, Ripple{
		Pos:       d.pointer,
		MaxRadius: parameter.DeconstructRadius * 1.5,
		Intensity: d.rng.Range(0.2, 1),
		Life:      1,
		Speed:     d.rng.Range(1, 3),
	})
	d.Ripples = keepLast(d.Ripples, parameter.DeconstructMaxRipples)
}

func (d *Deconstruct) spawnFlecks() {
	if d.img == nil || d.rng.Float64() > parameter.DeconstructPixelChance {
		return
	}
	count := int(d.rng.Range(10, 30))
	for i := 0; i < count; i++ {
		pos := d.pointer.Add(vmath.Point{X: d.rng.Spread(30), Y: d.rng.Spread(30)})
		c, ok := d.sample(pos)
		if !ok {
			continue
		}
		angle := d.rng.Float64() * vmath.TwoPi
		speed := d.rng.Range(1, 4)
		d.Flecks = append(d.Flecks, Fleck{
			Pos:      pos,
			Vel:      vmath.Point{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     d.rng.Range(2, 6),
			Color:    c,
			Life:     1,
			Rotation: d.rng.Float64() * vmath.TwoPi,
			Spin:     d.rng.Spread(0.1),
		})
	}
	d.Flecks = keepLast(d.Flecks, parameter.DeconstructMaxPixels)
}

func (d *Deconstruct) spawnHole() {
	if d.rng.Float64() > parameter.DeconstructHoleChance {
		return
	}
	d.Holes = append(d.Holes, Hole{
		Pos:       d.pointer.Add(vmath.Point{X: d.rng.Spread(20), Y: d.rng.Spread(20)}),
		Radius:    d.rng.Range(2, 10),
		MaxRadius: d.rng.Range(5, 20),
		Life:      1,
	})
	d.Holes = keepLast(d.Holes, parameter.DeconstructMaxHoles)
}

// sample reads the picture color under a canvas position, the picture is stretched to the canvas
func (d *Deconstruct) sample(p vmath.Point) (render.Color, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= d.w || p.Y >= d.h {
		return render.Color{}, false
	}
	b := d.img.Bounds()
	if b.Empty() {
		return render.Color{}, false
	}
	ix := b.Min.X + int(p.X/d.w*float64(b.Dx()))
	iy := b.Min.Y + int(p.Y/d.h*float64(b.Dy()))
	nc := color.NRGBAModel.Convert(d.img.At(ix, iy)).(color.NRGBA)
	return render.RGBA8(nc.R, nc.G, nc.B, float64(nc.A)/255), true
}

// Tick advances every pool one frame and compacts in place
func (d *Deconstruct) Tick(dt time.Duration) {
	d.clock += dt.Seconds()
	fade := parameter.DeconstructFade

	n := 0
	for _, t := range d.Threads {
		for j := range t.Base {
			phase := d.clock*t.Speed + float64(j)*0.3
			wave := vmath.Point{X: math.Sin(phase) * float64(j) * 0.5, Y: math.Cos(phase) * float64(j) * 0.3}
			t.Offset[j] = wave.Scale(float64(j) * 0.8)
		}
		t.Life -= fade
		if t.Life > 0 {
			d.Threads[n] = t
			n++
		}
	}
	clear(d.Threads[n:])
	d.Threads = d.Threads[:n]

	n = 0
	for _, h := range d.Holes {
		h.Radius = math.Min(h.MaxRadius, h.Radius+parameter.DeconstructHoleGrowth)
		h.Life -= fade * 0.5
		if h.Life > 0 {
			d.Holes[n] = h
			n++
		}
	}
	d.Holes = d.Holes[:n]

	n = 0
	for _, r := range d.Ripples {
		r.Radius += r.Speed
		r.Life -= fade * 0.8
		if r.Life > 0 && r.Radius < r.MaxRadius {
			d.Ripples[n] = r
			n++
		}
	}
	d.Ripples = d.Ripples[:n]

	n = 0
	for _, f := range d.Flecks {
		f.Pos = f.Pos.Add(f.Vel)
		f.Vel.Y += parameter.DeconstructGravity
		f.Rotation += f.Spin
		f.Life -= fade
		if f.Life > 0 {
			d.Flecks[n] = f
			n++
		}
	}
	d.Flecks = d.Flecks[:n]
}

func (d *Deconstruct) Render(s render.Surface) {
	s.BeginLayer(render.CompositeNormal, 1)
	if d.img != nil {
		s.DrawImage(d.img, 0, 0, d.w, d.h, 1)
	}

	if len(d.Threads) > 0 {
		s.BeginLayer(render.CompositeMultiply, 1)
		for i := range d.Threads {
			d.renderThread(s, &d.Threads[i])
		}
		s.EndLayer()
	}

	for _, f := range d.Flecks {
		s.Save()
		s.Translate(f.Pos.X, f.Pos.Y)
		s.Rotate(f.Rotation)
		s.SetGlow(2, f.Color.WithAlpha(f.Life*0.5))
		s.FillRect(-f.Size/2, -f.Size/2, f.Size, f.Size, render.Solid(f.Color.WithAlpha(f.Life)))
		s.SetGlow(0, render.Transparent)
		s.Restore()
	}

	if len(d.Ripples) > 0 {
		s.BeginLayer(render.CompositeMultiply, 1)
		for _, r := range d.Ripples {
			a := r.Life * r.Intensity
			for i := 0; i < 3; i++ {
				rr := r.Radius - float64(i)*15
				if rr <= 0 {
					continue
				}
				s.SetStroke(render.Solid(render.Black.WithAlpha(a * (0.3 - float64(i)*0.1))))
				s.SetLineWidth(2 - float64(i)*0.5)
				s.MoveTo(r.Pos.X+rr, r.Pos.Y)
				s.Arc(r.Pos.X, r.Pos.Y, rr, 0, vmath.TwoPi)
				s.Stroke()
			}
		}
		s.EndLayer()
	}

	if len(d.Holes) > 0 {
		s.BeginLayer(render.CompositeDestinationOut, 1)
		for _, h := range d.Holes {
			s.SetFill(render.Radial(h.Pos.X, h.Pos.Y, 0, h.Radius,
				render.Stop{Offset: 0, Color: render.Black.WithAlpha(h.Life)},
				render.Stop{Offset: 0.7, Color: render.Black.WithAlpha(h.Life * 0.5)},
				render.Stop{Offset: 1, Color: render.Transparent},
			))
			s.MoveTo(h.Pos.X+h.Radius, h.Pos.Y)
			s.Arc(h.Pos.X, h.Pos.Y, h.Radius, 0, vmath.TwoPi)
			s.Fill()
		}
		s.EndLayer()
	}
	s.EndLayer()

	if d.active {
		r := parameter.DeconstructRadius
		s.FillRect(d.pointer.X-r, d.pointer.Y-r, r*2, r*2, render.Radial(d.pointer.X, d.pointer.Y, 0, r,
			render.Stop{Offset: 0, Color: render.Black.WithAlpha(0.05)},
			render.Stop{Offset: 0.5, Color: render.Black.WithAlpha(0.02)},
			render.Stop{Offset: 1, Color: render.Transparent},
		))
	}
}

// renderThread strokes a fiber through segment midpoints and frays its tip
func (d *Deconstruct) renderThread(s render.Surface, t *LooseThread) {
	if len(t.Base) < 2 {
		return
	}
	a := math.Max(0, t.Life)
	s.SetStroke(render.Solid(t.Color.WithAlpha(a)))
	s.SetLineWidth(t.Width)

	prev := t.Base[0].Add(t.Offset[0])
	s.MoveTo(prev.X, prev.Y)
	for j := 1; j < len(t.Base); j++ {
		cur := t.Base[j].Add(t.Offset[j])
		mid := vmath.Midpoint(prev, cur)
		s.QuadraticTo(prev.X, prev.Y, mid.X, mid.Y)
		prev = cur
	}
	s.Stroke()

	// Fray angles derive from the thread so rendering stays deterministic
	tip := prev
	s.SetStroke(render.Solid(frayColor.WithAlpha(a * 0.6)))
	s.SetLineWidth(0.8)
	for i := 0; i < parameter.DeconstructFrayCount; i++ {
		k := float64(i+1) / float64(parameter.DeconstructFrayCount+1)
		angle := t.Angle + (k-0.5)*0.8
		length := parameter.DeconstructFrayLength * k
		s.MoveTo(tip.X, tip.Y)
		s.LineTo(tip.X+math.Cos(angle)*length, tip.Y+math.Sin(angle)*length)
	}
	s.Stroke()
}

func (d *Deconstruct) Dispose() {
	d.Threads = nil
	d.Holes = nil
	d.Ripples = nil
	d.Flecks = nil
	d.active = false
}

// keepLast trims s to its newest limit entries
func keepLast[T any](s []T, limit int) []T {
	if len(s) <= limit {
		return s
	}
	n := copy(s, s[len(s)-limit:])
	clear(s[n:])
	return s[:n]
}
