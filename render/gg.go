package render

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/lixenwraith/weave/core"
)

// glowPasses is the number of widened translucent passes approximating a shadow blur
const glowPasses = 3

// GG is a Surface backed by a gogpu/gg software context
type GG struct {
	dc     *gg.Context
	w, h   int
	fill   Paint
	stroke Paint
	line   float64

	glowBlur  float64
	glowColor Color

	layers []Composite

	fonts *text.FontSource
	faces map[float64]text.Face

	// Last converted image; gallery draws the same frame for seconds at a time
	imgSrc image.Image
	imgBuf *gg.ImageBuf
}

// NewGG creates a w×h surface cleared to transparent
func NewGG(w, h int) *GG {
	s := &GG{
		dc:     gg.NewContext(w, h),
		w:      w,
		h:      h,
		fill:   Solid(Black),
		stroke: Solid(Black),
		line:   1,
		faces:  make(map[float64]text.Face),
	}
	src, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		core.Logger().Warn("font unavailable, text disabled", "error", err)
	} else {
		s.fonts = src
	}
	return s
}

func (s *GG) Size() (int, int) { return s.w, s.h }

// Image returns a snapshot of the current frame
func (s *GG) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current frame to path
func (s *GG) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// EncodePNG writes the current frame as PNG to w
func (s *GG) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the context
func (s *GG) Close() error {
	return s.dc.Close()
}

func (s *GG) Clear(c Color) {
	s.dc.ClearWithColor(toGG(c))
}

func (s *GG) FillRect(x, y, w, h float64, p Paint) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetFillBrush(s.brush(p))
	s.check(s.dc.Fill())
}

func (s *GG) SetFill(p Paint)        { s.fill = p }
func (s *GG) SetStroke(p Paint)      { s.stroke = p }
func (s *GG) SetLineWidth(w float64) { s.line = w }

func (s *GG) SetGlow(blur float64, c Color) {
	s.glowBlur = blur
	s.glowColor = c
}

func (s *GG) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *GG) LineTo(x, y float64) { s.dc.LineTo(x, y) }
func (s *GG) ClosePath()          { s.dc.ClosePath() }

func (s *GG) QuadraticTo(cx, cy, x, y float64) {
	if _, _, ok := s.dc.GetCurrentPoint(); !ok {
		s.dc.MoveTo(cx, cy)
	}
	s.dc.QuadraticTo(cx, cy, x, y)
}

// Arc follows canvas semantics: a line joins the current point to the arc start
func (s *GG) Arc(x, y, r, a0, a1 float64) {
	sx, sy := x+r*math.Cos(a0), y+r*math.Sin(a0)
	if _, _, ok := s.dc.GetCurrentPoint(); ok {
		s.dc.LineTo(sx, sy)
	} else {
		s.dc.MoveTo(sx, sy)
	}
	s.dc.DrawArc(x, y, r, a0, a1)
}

func (s *GG) Fill() {
	if s.glowBlur > 0 {
		s.glow(s.line)
	}
	s.dc.SetFillBrush(s.brush(s.fill))
	s.check(s.dc.Fill())
}

func (s *GG) Stroke() {
	if s.glowBlur > 0 {
		s.glow(s.line)
	}
	s.dc.SetStrokeBrush(s.brush(s.stroke))
	s.dc.SetLineWidth(s.line)
	s.check(s.dc.Stroke())
}

// glow strokes the pending path in progressively narrower translucent passes
func (s *GG) glow(base float64) {
	for i := glowPasses; i >= 1; i-- {
		width := base + s.glowBlur*float64(i)*2/glowPasses
		c := s.glowColor.Fade(0.35 / float64(i+1))
		s.dc.SetStrokeBrush(gg.Solid(toGG(c)))
		s.dc.SetLineWidth(width)
		s.check(s.dc.StrokePreserve())
	}
}

func (s *GG) FillText(str string, x, y, size float64, align Align) {
	if s.fonts == nil || str == "" {
		return
	}
	face, ok := s.faces[size]
	if !ok {
		face = s.fonts.Face(size)
		s.faces[size] = face
	}
	s.dc.SetFont(face)

	ax := 0.0
	switch align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	c := s.fill.Color
	if s.fill.IsGradient() {
		c = s.fill.Gradient.Stops[0].Color
	}
	if s.glowBlur > 0 {
		g := s.glowColor.Fade(0.4)
		s.dc.SetRGBA(g.R, g.G, g.B, g.A)
		for _, d := range [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			s.dc.DrawStringAnchored(str, x+d[0], y+d[1], ax, 0)
		}
	}
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawStringAnchored(str, x, y, ax, 0)
}

func (s *GG) DrawImage(img image.Image, x, y, w, h, alpha float64) {
	// gg treats zero opacity as fully opaque
	if img == nil || alpha <= 0.001 || w <= 0 || h <= 0 || img.Bounds().Empty() {
		return
	}
	if img != s.imgSrc {
		s.imgSrc = img
		s.imgBuf = gg.ImageBufFromImage(img)
	}
	s.dc.DrawImageEx(s.imgBuf, gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
		Opacity:   math.Min(alpha, 1),
	})
}

func (s *GG) BeginLayer(mode Composite, opacity float64) {
	s.layers = append(s.layers, mode)
	switch mode {
	case CompositeMultiply:
		s.dc.PushLayer(gg.BlendMultiply, opacity)
	case CompositeScreen:
		s.dc.PushLayer(gg.BlendScreen, opacity)
	case CompositeDestinationOut:
		// Drawn normally into a scratch layer, then used as an erase mask in EndLayer
		s.dc.PushLayer(gg.BlendNormal, opacity)
	default:
		s.dc.PushLayer(gg.BlendNormal, opacity)
	}
}

func (s *GG) EndLayer() {
	n := len(s.layers)
	if n == 0 {
		return
	}
	mode := s.layers[n-1]
	s.layers = s.layers[:n-1]

	if mode != CompositeDestinationOut {
		s.dc.PopLayer()
		return
	}

	// Capture mask alpha, drop the layer without compositing it, then erase
	layer := s.dc.ResizeTarget().Data()
	mask := make([]uint8, len(layer)/4)
	for i := range mask {
		mask[i] = layer[i*4+3]
	}
	s.clearTarget()
	s.dc.PopLayer()
	eraseByMask(s.dc.ResizeTarget().Data(), mask)
}

// clearTarget zeroes the active pixmap so PopLayer composites nothing
func (s *GG) clearTarget() {
	data := s.dc.ResizeTarget().Data()
	for i := range data {
		data[i] = 0
	}
}

// eraseByMask scales every destination pixel by (1 - maskAlpha)
func eraseByMask(dst, mask []uint8) {
	for i, m := range mask {
		if m == 0 {
			continue
		}
		keep := 255 - uint16(m)
		o := i * 4
		for c := 0; c < 4; c++ {
			dst[o+c] = uint8(uint16(dst[o+c]) * keep / 255)
		}
	}
}

func (s *GG) Save()                  { s.dc.Push() }
func (s *GG) Restore()               { s.dc.Pop() }
func (s *GG) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *GG) Rotate(angle float64)   { s.dc.Rotate(angle) }

func (s *GG) brush(p Paint) gg.Brush {
	if !p.IsGradient() {
		return gg.Solid(toGG(p.Color))
	}
	g := p.Gradient
	switch g.Kind {
	case GradientRadial:
		b := gg.NewRadialGradientBrush(g.X0, g.Y0, g.R0, g.R1)
		for _, st := range g.Stops {
			b.AddColorStop(st.Offset, toGG(st.Color))
		}
		return b
	default:
		b := gg.NewLinearGradientBrush(g.X0, g.Y0, g.X1, g.Y1)
		for _, st := range g.Stops {
			b.AddColorStop(st.Offset, toGG(st.Color))
		}
		return b
	}
}

func (s *GG) check(err error) {
	if err != nil {
		core.Logger().Debug("draw failed", "error", err)
	}
}

func toGG(c Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
