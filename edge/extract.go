package edge

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/vmath"
)

// Processing limits
const (
	ProcessMaxSize = 800 // long side of the detection buffer
	DisplayFill    = 0.8 // displayed image fits in this fraction of the shorter canvas side
)

// Rect is a placement in canvas coordinates
type Rect struct {
	X, Y, W, H float64
}

// DisplaySize fits an iw×ih image into DisplayFill×min(cw, ch) preserving aspect
func DisplaySize(iw, ih int, cw, ch float64) (w, h float64) {
	if iw <= 0 || ih <= 0 {
		return 0, 0
	}
	maxSize := math.Min(cw, ch) * DisplayFill
	scale := math.Min(maxSize/float64(iw), maxSize/float64(ih))
	return float64(iw) * scale, float64(ih) * scale
}

// Placement returns a randomly positioned display rect that stays inside the canvas
func Placement(iw, ih int, cw, ch float64, rng *vmath.FastRand) Rect {
	w, h := DisplaySize(iw, ih, cw, ch)
	return Rect{
		X: rng.Float64() * math.Max(cw-w, 0),
		Y: rng.Float64() * math.Max(ch-h, 0),
		W: w,
		H: h,
	}
}

// Options drives a full extraction
type Options struct {
	Detector  *Detector
	Threshold float64
	// Display is where the image is drawn; chains are mapped into it
	Display Rect
	// CanvasW and CanvasH center the procedural fallback
	CanvasW, CanvasH float64
	Rand             *vmath.FastRand
}

// Extract runs scale → detect → trace → map to display. Unreadable input yields a Fallback result, never an error
func Extract(img image.Image, opts Options) Result {
	if opts.Detector == nil {
		opts.Detector = NewDetector()
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Rand == nil {
		opts.Rand = vmath.NewFastRand(1)
	}

	buf, err := ProcessBuffer(img)
	if err != nil {
		core.Logger().Warn("pixels unavailable, using procedural edges", "error", err)
		return Result{Kind: Fallback, Chains: ProceduralChains(opts.CanvasW, opts.CanvasH, opts.Rand)}
	}
	g, err := GrayFromImage(buf)
	if err != nil {
		core.Logger().Warn("pixels unavailable, using procedural edges", "error", err)
		return Result{Kind: Fallback, Chains: ProceduralChains(opts.CanvasW, opts.CanvasH, opts.Rand)}
	}

	pts, attempts, used := opts.Detector.Detect(g, opts.Threshold)
	if len(pts) == 0 {
		core.Logger().Info("no edges detected", "threshold", used)
	}
	chains := Trace(pts)

	sx := opts.Display.W / float64(g.W)
	sy := opts.Display.H / float64(g.H)
	for _, c := range chains {
		for i := range c {
			c[i].X = c[i].X*sx + opts.Display.X
			c[i].Y = c[i].Y*sy + opts.Display.Y
		}
	}

	core.Logger().Debug("edges extracted", "points", len(pts), "chains", len(chains), "attempts", attempts, "threshold", used)
	return Result{Kind: Detected, Chains: chains, Points: len(pts), Attempts: attempts, Threshold: used}
}

// ProcessBuffer resamples img so its long side is ProcessMaxSize
func ProcessBuffer(img image.Image) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrNoPixels
	}
	b := img.Bounds()
	if b.Dx() < 3 || b.Dy() < 3 {
		return nil, ErrNoPixels
	}
	scale := math.Min(ProcessMaxSize/float64(b.Dx()), ProcessMaxSize/float64(b.Dy()))
	w := int(math.Floor(float64(b.Dx()) * scale))
	h := int(math.Floor(float64(b.Dy()) * scale))
	if w < 3 || h < 3 {
		return nil, ErrNoPixels
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst, nil
}
