package sierpinski

import "errors"

var (
	// ErrInvalidCanvas is returned when the canvas width or height is below 1.
	ErrInvalidCanvas = errors.New("sierpinski: canvas dimensions must be positive")

	// ErrInvalidMinArea is returned when the minimum area is below MinAreaFloor.
	// A threshold of zero would never be crossed by degenerate triangles.
	ErrInvalidMinArea = errors.New("sierpinski: minimum area below floor")

	// ErrNilSink is returned when WithSink is given a nil sink.
	ErrNilSink = errors.New("sierpinski: nil sink")

	// ErrPixmapSize is returned when WithPixmap is given a pixmap whose
	// dimensions differ from the canvas.
	ErrPixmapSize = errors.New("sierpinski: pixmap size does not match canvas")

	// ErrUnsupportedFormat is returned by Save for unknown file extensions.
	ErrUnsupportedFormat = errors.New("sierpinski: unsupported image format")
)
