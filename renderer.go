package sierpinski

import (
	"fmt"
)

// MinAreaFloor is the smallest accepted minimum area.
// With a threshold of at least one, triangles whose coordinates have
// collapsed under midpoint truncation always stop the subdivision.
const MinAreaFloor int64 = 1

// Sink receives the triangles painted by a Renderer.
//
// FillTriangle fills the interior and boundary of t with c, overwriting
// prior pixels. Pixmap is the standard implementation.
type Sink interface {
	FillTriangle(t Triangle, c RGB)
}

// State is the renderer's position in its lifecycle.
type State int

const (
	// StateRunning means another subdivision round will be painted.
	StateRunning State = iota
	// StateTerminated means the threshold was reached; nothing more is painted.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats summarizes a render.
type Stats struct {
	// Rounds is the number of subdivision rounds painted.
	Rounds int
	// Painted is the number of holes painted across all rounds.
	Painted int
	// Generation is the size of the generation last subdivided,
	// 1 before the first round.
	Generation int
	// InitialArea is the area of the starting triangle.
	InitialArea int64
	// LastCandidateArea is the area of the first corner produced by the
	// last round, the value the threshold was last compared with.
	LastCandidateArea int64
}

// DefaultMinArea returns the resolution-proportional threshold
// max(width*height/32000, 32).
func DefaultMinArea(width, height int) int64 {
	return max(int64(width)*int64(height)/32000, 32)
}

// Renderer draws a Sierpinski triangle by breadth-first subdivision.
//
// Each round subdivides every triangle of the current generation, paints
// the holes in the empty color and collects the corners as candidates for
// the next generation. Only the first candidate is compared with the
// minimum area: all corners of one round are congruent up to truncation
// when starting from an equilateral triangle.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	width   int
	height  int
	minArea int64
	solid   RGB
	empty   RGB
	sink    Sink
	pixmap  *Pixmap

	state      State
	generation []Triangle
	stats      Stats
}

// NewRenderer creates a renderer for a width×height canvas and paints the
// starting triangle, the largest centered equilateral triangle, in the
// solid color.
//
// It fails with ErrInvalidCanvas, ErrInvalidMinArea, ErrNilSink or
// ErrPixmapSize when the configuration cannot produce a bounded render.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.minAreaSet {
		o.minArea = DefaultMinArea(width, height)
	}
	if o.minArea < MinAreaFloor {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidMinArea, o.minArea, MinAreaFloor)
	}

	r := &Renderer{
		width:   width,
		height:  height,
		minArea: o.minArea,
		solid:   o.solid,
		empty:   o.empty,
	}

	if o.sinkSet {
		if o.sink == nil {
			return nil, ErrNilSink
		}
		pm, ok := o.sink.(*Pixmap)
		if ok && pm == nil {
			return nil, ErrNilSink
		}
		// The sink replaces any WithPixmap target.
		o.pixmap = pm
	}

	switch {
	case o.pixmap != nil:
		if o.pixmap.Width() != width || o.pixmap.Height() != height {
			return nil, fmt.Errorf("%w: pixmap %dx%d, canvas %dx%d",
				ErrPixmapSize, o.pixmap.Width(), o.pixmap.Height(), width, height)
		}
		r.sink = o.pixmap
		r.pixmap = o.pixmap
	case o.sinkSet:
		r.sink = o.sink
	default:
		r.pixmap = NewPixmap(width, height)
		r.sink = r.pixmap
	}

	if o.hasBackground && r.pixmap != nil {
		r.pixmap.Clear(o.background)
	}

	start := MaxCenteredEquilateral(width, height)
	r.sink.FillTriangle(start, r.solid)
	r.generation = []Triangle{start}
	r.stats.InitialArea = start.Area()
	r.stats.Generation = 1

	r.logCreated()

	return r, nil
}

// Step paints one subdivision round and reports whether the renderer is
// still running. After termination Step does nothing and returns false.
//
// When the first corner of the round is not larger than the minimum area
// the corners are discarded unpainted and the renderer terminates; the
// holes of this round have already been painted.
func (r *Renderer) Step() bool {
	if r.state == StateTerminated {
		return false
	}

	next := make([]Triangle, 0, 3*len(r.generation))
	for _, t := range r.generation {
		center, corners := Subdivide(t)
		r.sink.FillTriangle(center, r.empty)
		next = append(next, corners[:]...)
	}

	r.stats.Rounds++
	r.stats.Painted += len(r.generation)
	r.stats.Generation = len(r.generation)

	// The generation is never empty, so next holds at least three corners.
	candidate := next[0].Area()
	r.stats.LastCandidateArea = candidate

	r.logRound(candidate)

	if candidate > r.minArea {
		r.generation = next
		return true
	}

	r.state = StateTerminated
	r.logTerminated(candidate)
	return false
}

// Run steps until the renderer terminates and returns the final stats.
func (r *Renderer) Run() Stats {
	for r.Step() {
	}
	return r.stats
}

// State returns the current state.
func (r *Renderer) State() State {
	return r.state
}

// Stats returns the statistics so far.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Generation returns a copy of the triangles the next round would subdivide,
// or the last subdivided generation once terminated.
func (r *Renderer) Generation() []Triangle {
	gen := make([]Triangle, len(r.generation))
	copy(gen, r.generation)
	return gen
}

// MinArea returns the effective minimum area.
func (r *Renderer) MinArea() int64 {
	return r.minArea
}

// Pixmap returns the pixmap being drawn into, or nil for a custom Sink.
func (r *Renderer) Pixmap() *Pixmap {
	return r.pixmap
}

// Render draws a complete Sierpinski triangle on a new width×height canvas.
// Options are as for NewRenderer; with WithSink the returned pixmap is nil
// unless the sink is a *Pixmap.
func Render(width, height int, opts ...Option) (*Pixmap, Stats, error) {
	r, err := NewRenderer(width, height, opts...)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := r.Run()
	return r.Pixmap(), stats, nil
}
