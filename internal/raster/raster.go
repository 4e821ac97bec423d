// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides aliased scanline rasterization for integer polygons.
//
// Polygons are filled row by row: every edge crossing a row contributes an
// x coordinate rounded to the nearest pixel, crossings are sorted and the
// spans between consecutive pairs are filled inclusively. The outline is
// then drawn with Bresenham lines so the boundary is always covered, even
// for slivers thinner than a pixel.
package raster

import "slices"

// RGB represents an opaque color (internal copy to avoid import cycle).
type RGB struct {
	R, G, B uint8
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGB)
}

// SpanFiller is an optional interface that pixmaps can implement for optimized span filling.
// The span covers [x1, x2] inclusive at row y. Coordinates are already clipped.
type SpanFiller interface {
	FillSpan(x1, x2, y int, c RGB)
}

// Rasterizer fills polygons onto a Pixmap.
// The crossing buffer is reused between calls, so a Rasterizer must not be
// shared between goroutines.
type Rasterizer struct {
	xs []int
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		xs: make([]int, 0, 8),
	}
}

// FillPolygon fills the closed polygon through points, boundary included.
// The polygon is closed implicitly; a repeated final vertex is ignored.
// Pixels outside the pixmap are clipped.
func (r *Rasterizer) FillPolygon(pixmap Pixmap, points []Point, color RGB) {
	n := len(points)
	if n > 1 && points[0] == points[n-1] {
		n--
		points = points[:n]
	}
	if n == 0 {
		return
	}

	yMin, yMax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}

	// Clamp to pixmap bounds
	yMin = max(yMin, 0)
	yMax = min(yMax, pixmap.Height()-1)

	for y := yMin; y <= yMax; y++ {
		r.xs = r.xs[:0]
		for i := 0; i < n; i++ {
			e := Edge{P0: points[i], P1: points[(i+1)%n]}
			r.xs = e.AppendCrossings(r.xs, y)
		}
		slices.Sort(r.xs)

		for i := 0; i+1 < len(r.xs); i += 2 {
			fillSpan(pixmap, r.xs[i], r.xs[i+1], y, color)
		}
	}

	for i := 0; i < n; i++ {
		DrawLine(pixmap, points[i], points[(i+1)%n], color)
	}
}

// fillSpan fills the inclusive span [x1, x2] on row y.
func fillSpan(pixmap Pixmap, x1, x2, y int, color RGB) {
	if y < 0 || y >= pixmap.Height() {
		return
	}

	if x1 > x2 {
		x1, x2 = x2, x1
	}

	x1 = max(x1, 0)
	x2 = min(x2, pixmap.Width()-1)
	if x1 > x2 {
		return
	}

	// Try to use optimized FillSpan if available
	if spanFiller, ok := pixmap.(SpanFiller); ok {
		spanFiller.FillSpan(x1, x2, y, color)
		return
	}

	for x := x1; x <= x2; x++ {
		pixmap.SetPixel(x, y, color)
	}
}

// DrawLine draws the segment from p0 to p1, both endpoints included,
// using Bresenham's algorithm. Pixels outside the pixmap are skipped.
func DrawLine(pixmap Pixmap, p0, p1 Point, color RGB) {
	w, h := pixmap.Width(), pixmap.Height()

	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	e := dx + dy
	x, y := p0.X, p0.Y
	for {
		if x >= 0 && x < w && y >= 0 && y < h {
			pixmap.SetPixel(x, y, color)
		}
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
