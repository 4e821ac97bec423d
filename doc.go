// Package sierpinski renders a Sierpinski triangle into a raster image.
//
// # Overview
//
// Rendering starts from the largest equilateral triangle centered on the
// canvas, painted in the solid color. Each round splits every triangle of
// the current generation at its edge midpoints, paints the central
// triangle (the hole) in the empty color, and keeps the three corner
// triangles as the next generation. Rounds continue while the first
// corner produced is larger than the minimum area.
//
// # Quick Start
//
//	import "github.com/gogpu/sierpinski"
//
//	pm, stats, err := sierpinski.Render(1024, 1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("%d rounds", stats.Rounds)
//	if err := pm.SavePNG("fractal.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Arithmetic
//
// Coordinates are integers. Midpoints and areas use truncating integer
// division, so midpoints drift by up to half a pixel per round and areas
// of triangles with an odd doubled area round down. The output for a
// given canvas and minimum area is deterministic.
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Point, Triangle, Midpoint, Subdivide, MaxCenteredEquilateral
//   - Driver: Renderer (Step, Run) and the Render convenience function
//   - Output: Sink, Pixmap, Save
//   - Internal: raster (aliased scanline polygon fill)
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package sierpinski
