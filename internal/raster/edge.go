// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Edge is a polygon side between two integer vertices.
type Edge struct {
	P0, P1 Point
}

// Spans reports whether row y lies within the edge's vertical extent.
func (e Edge) Spans(y int) bool {
	return (e.P0.Y <= y && y <= e.P1.Y) || (e.P1.Y <= y && y <= e.P0.Y)
}

// AppendCrossings appends the x coordinates where the edge meets row y.
//
// A horizontal edge lying on the row contributes both endpoints. A vertex
// on the row is contributed by each edge that continues below it: twice at
// a top vertex, once where the outline passes through, never at a bottom
// vertex (the outline pass covers that pixel). Other crossings are
// interpolated and rounded half away from zero.
func (e Edge) AppendCrossings(xs []int, y int) []int {
	if !e.Spans(y) {
		return xs
	}

	p0, p1 := e.P0, e.P1
	switch {
	case p0.Y == p1.Y:
		return append(xs, p0.X, p1.X)
	case p0.Y == y || p1.Y == y:
		if p1.Y > y {
			xs = append(xs, p0.X)
		}
		if p0.Y > y {
			xs = append(xs, p1.X)
		}
		return xs
	}

	t := float64(y-p0.Y) / float64(p1.Y-p0.Y)
	x := float64(p0.X) + t*float64(p1.X-p0.X)
	return append(xs, int(math.Round(x)))
}
