package effects

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/lixenwraith/weave/parameter"
	"github.com/lixenwraith/weave/render"
)

func testPicture(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 200, G: 40, B: 90, A: 255}}, image.Point{}, draw.Src)
	return img
}

func tearAround(d *Deconstruct, n int) {
	d.PointerEnter()
	for i := 0; i < n; i++ {
		d.PointerMove(100+float64(i%20), 80+float64(i%15))
	}
}

func TestDeconstructIdleWithoutPointer(t *testing.T) {
	d := NewDeconstruct(testPicture(50, 50), 1)
	d.Init(200, 160)

	for i := 0; i < 100; i++ {
		d.PointerMove(100, 80)
	}
	if len(d.Threads)+len(d.Holes)+len(d.Ripples)+len(d.Flecks) != 0 {
		t.Error("Expected no effects while the pointer is outside")
	}
}

func TestDeconstructPoolsCapped(t *testing.T) {
	d := NewDeconstruct(testPicture(50, 50), 42)
	d.Init(200, 160)
	tearAround(d, 2000)

	if len(d.Threads) == 0 {
		t.Fatal("Expected threads after tearing")
	}
	tests := []struct {
		name  string
		count int
		limit int
	}{
		{"threads", len(d.Threads), parameter.DeconstructMaxThreads},
		{"ripples", len(d.Ripples), parameter.DeconstructMaxRipples},
		{"flecks", len(d.Flecks), parameter.DeconstructMaxPixels},
		{"holes", len(d.Holes), parameter.DeconstructMaxHoles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.count > tt.limit {
				t.Errorf("Expected at most %d, got %d", tt.limit, tt.count)
			}
		})
	}
}

func TestDeconstructFlecksSamplePicture(t *testing.T) {
	d := NewDeconstruct(testPicture(50, 50), 9)
	d.Init(200, 160)
	tearAround(d, 2000)

	if len(d.Flecks) == 0 {
		t.Fatal("Expected flecks after tearing")
	}
	want := render.RGBA8(200, 40, 90, 1)
	for _, f := range d.Flecks {
		if f.Color != want {
			t.Fatalf("Expected fleck color %+v, got %+v", want, f.Color)
		}
	}

	blank := NewDeconstruct(nil, 9)
	blank.Init(200, 160)
	tearAround(blank, 2000)
	if len(blank.Flecks) != 0 {
		t.Errorf("Expected no flecks without a picture, got %d", len(blank.Flecks))
	}
}

func TestDeconstructFadesOut(t *testing.T) {
	d := NewDeconstruct(testPicture(50, 50), 3)
	d.Init(200, 160)
	tearAround(d, 500)
	d.PointerLeave()

	for i := 0; i < 300; i++ {
		d.Tick(step)
	}
	if n := len(d.Threads) + len(d.Holes) + len(d.Ripples) + len(d.Flecks); n != 0 {
		t.Errorf("Expected every effect to expire, %d remain", n)
	}
}

func TestDeconstructRenderLayers(t *testing.T) {
	d := NewDeconstruct(testPicture(50, 50), 42)
	d.Init(200, 160)
	tearAround(d, 2000)
	d.Tick(step)

	rec := render.NewRecorder(200, 160)
	d.Render(rec)

	if rec.LayerDepth() != 0 {
		t.Fatalf("Expected balanced layers, depth %d", rec.LayerDepth())
	}
	if rec.Count("DrawImage") != 1 {
		t.Errorf("Expected picture drawn once, got %d", rec.Count("DrawImage"))
	}

	modes := make(map[render.Composite]int)
	for _, op := range rec.Ops {
		if op.Name == "BeginLayer" {
			modes[render.Composite(op.Args[0])]++
		}
	}
	if len(d.Holes) > 0 && modes[render.CompositeDestinationOut] != 1 {
		t.Errorf("Expected one erase layer for holes, got %d", modes[render.CompositeDestinationOut])
	}
	if len(d.Threads) > 0 && modes[render.CompositeMultiply] == 0 {
		t.Error("Expected a multiply layer for threads")
	}
}
