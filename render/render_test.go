package render

import (
	"math"
	"testing"
)

func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 100, 50, RGB{255, 0, 0}},
		{"green", 120, 100, 50, RGB{0, 255, 0}},
		{"blue", 240, 100, 50, RGB{0, 0, 255}},
		{"wrapped red", 360, 100, 50, RGB{255, 0, 0}},
		{"negative hue", -240, 100, 50, RGB{0, 255, 0}},
		{"white", 77, 30, 100, RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l, 1).RGB8()
			if got != tt.want {
				t.Errorf("HSL(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex("#39ff14").RGB8(); got != (RGB{0x39, 0xff, 0x14}) {
		t.Errorf("Expected #39ff14, got %v", got)
	}
	if got := Hex("bogus"); got != Black {
		t.Errorf("Expected black for malformed literal, got %v", got)
	}
}

func TestColorMix(t *testing.T) {
	a := Color{0, 0, 0, 1}
	b := Color{1, 0.5, 0, 0}

	if got := a.Mix(b, 0); got != a {
		t.Errorf("Expected start color at t=0, got %v", got)
	}
	got := a.Mix(b, 0.5)
	if math.Abs(got.R-0.5) > 1e-9 || math.Abs(got.G-0.25) > 1e-9 || math.Abs(got.A-0.5) > 1e-9 {
		t.Errorf("Expected midpoint blend, got %v", got)
	}
	if got := a.Mix(b, 2); got != a.Mix(b, 1) {
		t.Errorf("Expected t clamped to 1, got %v", got)
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	r, _, _, a := Color{1, 0, 0, 0.5}.RGBA()
	if a != 0x7fff {
		t.Errorf("Expected alpha 0x7fff, got %#x", a)
	}
	if r != a {
		t.Errorf("Expected premultiplied red equal to alpha, got %#x", r)
	}
}

func TestRecorderCountsAndLayers(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.BeginLayer(CompositeScreen, 0.5)
	rec.MoveTo(0, 0)
	rec.LineTo(5, 5)
	rec.Stroke()
	rec.SetFill(Solid(White))
	rec.FillText("hi", 1, 1, 12, AlignCenter)
	rec.EndLayer()

	if rec.Count("LineTo") != 1 || rec.Count("Stroke") != 1 {
		t.Errorf("Unexpected op counts: %+v", rec.Ops)
	}
	if rec.LayerDepth() != 0 {
		t.Errorf("Expected balanced layers, depth %d", rec.LayerDepth())
	}
	if texts := rec.Texts(); len(texts) != 1 || texts[0] != "hi" {
		t.Errorf("Expected [hi], got %v", texts)
	}
}

func TestGGDestinationOutErases(t *testing.T) {
	s := NewGG(40, 40)
	defer s.Close()

	s.Clear(White)
	s.BeginLayer(CompositeDestinationOut, 1)
	s.FillRect(10, 10, 20, 20, Solid(Black))
	s.EndLayer()

	img := s.Image()
	_, _, _, inside := img.At(20, 20).RGBA()
	_, _, _, outside := img.At(2, 2).RGBA()

	if inside != 0 {
		t.Errorf("Expected erased pixel alpha 0, got %d", inside)
	}
	if outside != 0xffff {
		t.Errorf("Expected untouched pixel opaque, got %d", outside)
	}
}

func TestEraseByMask(t *testing.T) {
	dst := []uint8{200, 100, 50, 255, 200, 100, 50, 255}
	eraseByMask(dst, []uint8{255, 0})

	for i := 0; i < 4; i++ {
		if dst[i] != 0 {
			t.Fatalf("Expected first pixel cleared, got %v", dst[:4])
		}
	}
	if dst[7] != 255 {
		t.Errorf("Expected second pixel kept, got %v", dst[4:])
	}
}

func TestGradientPaint(t *testing.T) {
	p := Radial(5, 5, 0, 10, Stop{0, White}, Stop{1, Transparent})
	if !p.IsGradient() || p.Gradient.Kind != GradientRadial {
		t.Fatalf("Expected radial gradient paint")
	}
	if math.Abs(p.Gradient.R1-10) > 1e-9 {
		t.Errorf("Expected outer radius 10, got %v", p.Gradient.R1)
	}
	if Solid(Black).IsGradient() {
		t.Errorf("Solid paint reported as gradient")
	}
}
