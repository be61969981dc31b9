package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha color with channels in [0, 1]
type Color struct {
	R, G, B, A float64
}

// Predefined colors
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// RGBA8 builds a color from 8-bit channels and a float alpha, mirroring rgba(r,g,b,a) notation
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

// HSL builds a color from hue in degrees and saturation/lightness in percent
func HSL(h, s, l, a float64) Color {
	c := colorful.Hsl(wrapHue(h), clampUnit(s/100), clampUnit(l/100))
	return Color{c.R, c.G, c.B, clampUnit(a)}
}

// Hex parses a #rrggbb literal into an opaque color, malformed input yields black
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return Black
	}
	return Color{c.R, c.G, c.B, 1}
}

// WithAlpha returns the color with alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = clampUnit(a)
	return c
}

// Fade multiplies alpha
func (c Color) Fade(f float64) Color {
	c.A = clampUnit(c.A * f)
	return c
}

// Mix blends toward o by t in RGB space, alpha interpolates linearly
func (c Color) Mix(o Color, t float64) Color {
	t = clampUnit(t)
	m := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t)
	return Color{m.R, m.G, m.B, c.A + (o.A-c.A)*t}
}

// RGBA implements color.Color with premultiplied 16-bit channels
func (c Color) RGBA() (r, g, b, a uint32) {
	a8 := clampUnit(c.A)
	return uint32(clampUnit(c.R) * a8 * 0xffff),
		uint32(clampUnit(c.G) * a8 * 0xffff),
		uint32(clampUnit(c.B) * a8 * 0xffff),
		uint32(a8 * 0xffff)
}

// RGB8 drops alpha and quantizes
func (c Color) RGB8() RGB {
	return RGB{clamp(c.R * 255), clamp(c.G * 255), clamp(c.B * 255)}
}

// RGB stores explicit 8-bit color channels for cell-based hosts
type RGB struct {
	R, G, B uint8
}

// FromColor converts any color.Color, un-premultiplying as needed
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
