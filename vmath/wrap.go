package vmath

import "math"

// Wrap maps v into [0, size) for any finite v, size must be positive
func Wrap(v, size float64) float64 {
	r := Mod(v, size)
	// Mod of a tiny negative can round up to size
	if r >= size {
		r = 0
	}
	return r
}

// WrapPoint wraps both axes
func WrapPoint(p Point, w, h float64) Point {
	return Point{Wrap(p.X, w), Wrap(p.Y, h)}
}

// WrapGrid wraps v to a grid-aligned coordinate in [0, cols*cell)
// cols = floor(size/cell), at least 1
func WrapGrid(v, cell, size float64) float64 {
	cols := math.Floor(size / cell)
	if cols < 1 {
		cols = 1
	}
	c := Mod(math.Floor(v/cell), cols)
	return c * cell
}

// SnapGrid floors v onto the grid
func SnapGrid(v, cell float64) float64 {
	return math.Floor(v/cell) * cell
}
