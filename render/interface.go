package render

import "image"

// Composite selects how subsequent drawing in a layer combines with what is below
type Composite uint8

const (
	CompositeNormal Composite = iota
	CompositeMultiply
	CompositeScreen
	// CompositeDestinationOut erases the destination where the layer is opaque
	CompositeDestinationOut
)

// Align anchors text horizontally around its x coordinate
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the immediate-mode 2D raster every engine renders into.
// Path operations accumulate until Fill or Stroke consumes the path.
type Surface interface {
	Size() (w, h int)

	Clear(c Color)
	FillRect(x, y, w, h float64, p Paint)

	SetFill(p Paint)
	SetStroke(p Paint)
	SetLineWidth(w float64)
	// SetGlow applies a blurred halo of radius blur to following fills and strokes, 0 disables
	SetGlow(blur float64, c Color)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	Arc(x, y, r, a0, a1 float64)
	ClosePath()
	Fill()
	Stroke()

	FillText(s string, x, y, size float64, align Align)
	DrawImage(img image.Image, x, y, w, h, alpha float64)

	// BeginLayer groups drawing composited with mode at opacity when EndLayer is called
	BeginLayer(mode Composite, opacity float64)
	EndLayer()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}
