package sierpinski

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default colors and threshold
//	r, err := sierpinski.NewRenderer(800, 600)
//
//	// Red holes on a white triangle, coarser detail
//	r, err := sierpinski.NewRenderer(800, 600,
//	    sierpinski.WithEmpty(sierpinski.Red),
//	    sierpinski.WithMinArea(256),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	minArea       int64
	minAreaSet    bool
	solid         RGB
	empty         RGB
	background    RGB
	hasBackground bool
	pixmap        *Pixmap
	sink          Sink
	sinkSet       bool
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		solid: White,
		empty: Black,
	}
}

// WithMinArea sets the area threshold below which subdivision stops.
// A round's corners become the next generation only while the first of
// them has an area strictly greater than minArea. Values below
// MinAreaFloor make NewRenderer fail with ErrInvalidMinArea.
//
// The default is DefaultMinArea(width, height).
func WithMinArea(minArea int64) Option {
	return func(o *options) {
		o.minArea = minArea
		o.minAreaSet = true
	}
}

// WithSolid sets the color of the starting triangle. The default is White.
func WithSolid(c RGB) Option {
	return func(o *options) {
		o.solid = c
	}
}

// WithEmpty sets the color of the holes. The default is Black.
func WithEmpty(c RGB) Option {
	return func(o *options) {
		o.empty = c
	}
}

// WithBackground clears the canvas to c before the starting triangle is
// painted. Without it the canvas keeps its existing contents (zero for a
// fresh pixmap).
func WithBackground(c RGB) Option {
	return func(o *options) {
		o.background = c
		o.hasBackground = true
	}
}

// WithPixmap renders into an existing pixmap.
// The pixmap dimensions must match the canvas.
//
// Example:
//
//	pm := sierpinski.NewPixmap(800, 600)
//	r, err := sierpinski.NewRenderer(800, 600, sierpinski.WithPixmap(pm))
func WithPixmap(pm *Pixmap) Option {
	return func(o *options) {
		o.pixmap = pm
	}
}

// WithSink renders into a custom Sink instead of a Pixmap.
// Renderer.Pixmap returns nil unless s is a *Pixmap. WithSink replaces any
// WithPixmap target whatever the sink's type; WithBackground is ignored
// unless the sink is a *Pixmap. A nil sink, including a nil *Pixmap, makes
// NewRenderer fail with ErrNilSink.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
		o.sinkSet = true
	}
}
