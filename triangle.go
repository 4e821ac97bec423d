package sierpinski

import (
	"fmt"
	"math"
)

// sin60 is sqrt(3)/2, the height of an equilateral triangle with unit side.
var sin60 = math.Sqrt(3) / 2

// Triangle is three vertices in order.
// Order affects only the sign of SignedArea2; the shape is the same.
type Triangle [3]Point

// Tri is a convenience function to create a Triangle.
func Tri(a, b, c Point) Triangle {
	return Triangle{a, b, c}
}

// SignedArea2 returns twice the signed area of t:
// (bx-ax)(cy-ay) - (cx-ax)(by-ay).
// The sign gives the winding: positive is clockwise on screen (Y down).
// Computed in int64 so canvases far larger than any image fit.
func (t Triangle) SignedArea2() int64 {
	a, b, c := t[0], t[1], t[2]
	return int64(b.X-a.X)*int64(c.Y-a.Y) - int64(c.X-a.X)*int64(b.Y-a.Y)
}

// Area returns the absolute area of t.
//
// The determinant is halved with truncating integer division, so a
// triangle whose doubled area is odd loses half a unit: the triangle with
// vertices (0,0), (1,0), (0,1) has area 0. Because this rounding is applied
// to the magnitude it does not depend on vertex order.
func (t Triangle) Area() int64 {
	d := t.SignedArea2()
	if d < 0 {
		d = -d
	}
	return d / 2
}

// Area returns the absolute area of t. See Triangle.Area.
func Area(t Triangle) int64 {
	return t.Area()
}

// Subdivide splits t into the central hole and the three corner triangles.
//
// For vertices A, B, C with midpoints AB, AC, BC the center is (AB, AC, BC)
// and the corners are (A, AB, AC), (B, AB, BC) and (C, AC, BC), in that order.
// Each corner has a quarter of the area of t, up to midpoint truncation.
func Subdivide(t Triangle) (center Triangle, corners [3]Triangle) {
	a, b, c := t[0], t[1], t[2]
	ab := Midpoint(a, b)
	ac := Midpoint(a, c)
	bc := Midpoint(b, c)

	center = Triangle{ab, ac, bc}
	corners = [3]Triangle{
		{a, ab, ac},
		{b, ab, bc},
		{c, ac, bc},
	}
	return center, corners
}

// EquilateralSide returns the side of the largest upright equilateral
// triangle that fits a width×height canvas.
func EquilateralSide(width, height int) float64 {
	w, h := float64(width), float64(height)
	if w*sin60 > h {
		return h / sin60
	}
	return w
}

// MaxCenteredEquilateral returns the largest equilateral triangle centered
// on a width×height canvas, apex up. Vertices are apex, bottom-left,
// bottom-right.
//
// Positions are computed in float64 from the canvas center and each
// coordinate is truncated toward zero only at the end.
func MaxCenteredEquilateral(width, height int) Triangle {
	side := EquilateralSide(width, height)
	cx := float64(width) / 2
	cy := float64(height) / 2
	half := side * sin60 / 2

	return Triangle{
		{X: int(cx), Y: int(cy - half)},
		{X: int(cx - side/2), Y: int(cy + half)},
		{X: int(cx + side/2), Y: int(cy + half)},
	}
}

// String implements fmt.Stringer.
func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t[0], t[1], t[2])
}
