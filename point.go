package sierpinski

import "fmt"

// Point is an integer pixel coordinate.
// Origin (0,0) is the top-left corner, Y increases down.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Midpoint returns the average of p and q, truncated toward zero on each axis.
// For odd coordinate sums the result is biased by up to half a pixel; the
// error compounds across subdivision rounds and is accepted.
func Midpoint(p, q Point) Point {
	return Point{
		X: (p.X + q.X) / 2,
		Y: (p.Y + q.Y) / 2,
	}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
