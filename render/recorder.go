package render

import "image"

// Op is one recorded Surface call
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Paint Paint
}

// Recorder is a Surface that records calls instead of rasterizing, for tests and dry runs
type Recorder struct {
	W, H int
	Ops  []Op

	fill   Paint
	stroke Paint
	depth  int
}

// NewRecorder creates a recording surface of the given size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

// Reset drops recorded ops, keeping size
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth = 0
}

// Count returns how many ops with name were recorded
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Texts returns every string drawn with FillText in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Name == "FillText" {
			out = append(out, op.Text)
		}
	}
	return out
}

// LayerDepth reports unbalanced BeginLayer calls
func (r *Recorder) LayerDepth() int { return r.depth }

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

func (r *Recorder) Clear(c Color) {
	r.Ops = append(r.Ops, Op{Name: "Clear", Paint: Solid(c)})
}

func (r *Recorder) FillRect(x, y, w, h float64, p Paint) {
	r.Ops = append(r.Ops, Op{Name: "FillRect", Args: []float64{x, y, w, h}, Paint: p})
}

func (r *Recorder) SetFill(p Paint)        { r.fill = p }
func (r *Recorder) SetStroke(p Paint)      { r.stroke = p }
func (r *Recorder) SetLineWidth(w float64) { r.add("SetLineWidth", w) }
func (r *Recorder) SetGlow(blur float64, c Color) {
	r.Ops = append(r.Ops, Op{Name: "SetGlow", Args: []float64{blur}, Paint: Solid(c)})
}

func (r *Recorder) MoveTo(x, y float64)              { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)              { r.add("LineTo", x, y) }
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) { r.add("QuadraticTo", cx, cy, x, y) }
func (r *Recorder) Arc(x, y, rad, a0, a1 float64)    { r.add("Arc", x, y, rad, a0, a1) }
func (r *Recorder) ClosePath()                       { r.add("ClosePath") }

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, Op{Name: "Fill", Paint: r.fill})
}

func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, Op{Name: "Stroke", Paint: r.stroke})
}

func (r *Recorder) FillText(s string, x, y, size float64, align Align) {
	r.Ops = append(r.Ops, Op{Name: "FillText", Args: []float64{x, y, size, float64(align)}, Text: s, Paint: r.fill})
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h, alpha float64) {
	r.add("DrawImage", x, y, w, h, alpha)
}

func (r *Recorder) BeginLayer(mode Composite, opacity float64) {
	r.depth++
	r.add("BeginLayer", float64(mode), opacity)
}

func (r *Recorder) EndLayer() {
	r.depth--
	r.add("EndLayer")
}

func (r *Recorder) Save()                  { r.add("Save") }
func (r *Recorder) Restore()               { r.add("Restore") }
func (r *Recorder) Translate(x, y float64) { r.add("Translate", x, y) }
func (r *Recorder) Rotate(angle float64)   { r.add("Rotate", angle) }

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*GG)(nil)
)
