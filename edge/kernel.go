package edge

import (
	"image"
	"math"
)

// kernelPair is an x/y gradient operator pair
type kernelPair struct {
	x, y [3][3]float64
}

var kernels = [...]kernelPair{
	// Sobel
	{
		x: [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}},
		y: [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}},
	},
	// Center-weighted
	{
		x: [3][3]float64{{-1, 0, 1}, {-3, 0, 3}, {-1, 0, 1}},
		y: [3][3]float64{{-1, -3, -1}, {0, 0, 0}, {1, 3, 1}},
	},
	// Diagonal
	{
		x: [3][3]float64{{-2, -1, 0}, {-1, 0, 1}, {0, 1, 2}},
		y: [3][3]float64{{0, 1, 2}, {-1, 0, 1}, {-2, -1, 0}},
	},
}

// Gray is a single-channel intensity buffer in [0, 255]
type Gray struct {
	W, H int
	Pix  []float64
}

// GrayFromRGBA averages R, G and B of a packed RGBA buffer
func GrayFromRGBA(pix []uint8, w, h int) (*Gray, error) {
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return nil, ErrNoPixels
	}
	g := &Gray{W: w, H: h, Pix: make([]float64, w*h)}
	for i := range g.Pix {
		o := i * 4
		g.Pix[i] = (float64(pix[o]) + float64(pix[o+1]) + float64(pix[o+2])) / 3
	}
	return g, nil
}

// GrayFromImage reads an RGBA image into a gray buffer
func GrayFromImage(img *image.RGBA) (*Gray, error) {
	if img == nil {
		return nil, ErrNoPixels
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if img.Stride == w*4 && b.Min == (image.Point{}) {
		return GrayFromRGBA(img.Pix, w, h)
	}
	packed := make([]uint8, 0, w*h*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		packed = append(packed, img.Pix[off:off+w*4]...)
	}
	return GrayFromRGBA(packed, w, h)
}

// cell holds the strongest response at a pixel; zero magnitude means below the map threshold
type cell struct {
	magnitude float64
	direction float64
}

// gradientMap applies every kernel at each interior pixel and keeps responses above floor
func gradientMap(g *Gray, floor float64) []cell {
	m := make([]cell, g.W*g.H)
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			var best cell
			for k := range kernels {
				gx, gy := apply(g, x, y, &kernels[k])
				mag := math.Sqrt(gx*gx + gy*gy)
				if mag > best.magnitude {
					best = cell{magnitude: mag, direction: math.Atan2(gy, gx)}
				}
			}
			if best.magnitude > floor {
				m[y*g.W+x] = best
			}
		}
	}
	return m
}

func apply(g *Gray, x, y int, k *kernelPair) (gx, gy float64) {
	for ky := -1; ky <= 1; ky++ {
		row := (y + ky) * g.W
		for kx := -1; kx <= 1; kx++ {
			v := g.Pix[row+x+kx]
			gx += v * k.x[ky+1][kx+1]
			gy += v * k.y[ky+1][kx+1]
		}
	}
	return gx, gy
}
