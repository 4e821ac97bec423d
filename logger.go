package sierpinski

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record and reports all levels disabled, so
// attributes are never evaluated while no logger is installed.
var silent = slog.New(slog.DiscardHandler)

// installed is nil until SetLogger is called with a non-nil logger.
var installed atomic.Pointer[slog.Logger]

// SetLogger routes the package's diagnostics to l. A nil l silences them
// again, which is also the initial state. It may be called while a render
// is in progress on another goroutine.
//
// Records emitted, all with the "sierpinski:" message prefix:
//
//	Info  "renderer created"  width, height, minArea, initialArea
//	Debug "round"             round, triangles, candidateArea
//	Info  "terminated"        rounds, painted, candidateArea, minArea
//
// The triangles attribute of a round is the size of the generation it
// subdivided: 1, 3, 9, 27 and so on. candidateArea is the area of the
// first corner, the value compared with the minimum area.
//
// Example:
//
//	sierpinski.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	installed.Store(l)
}

// Logger returns the logger in effect, never nil.
func Logger() *slog.Logger {
	if l := installed.Load(); l != nil {
		return l
	}
	return silent
}

func (r *Renderer) logCreated() {
	Logger().Info("sierpinski: renderer created",
		"width", r.width, "height", r.height,
		"minArea", r.minArea, "initialArea", r.stats.InitialArea)
}

func (r *Renderer) logRound(candidate int64) {
	Logger().Debug("sierpinski: round",
		"round", r.stats.Rounds,
		"triangles", r.stats.Generation,
		"candidateArea", candidate)
}

func (r *Renderer) logTerminated(candidate int64) {
	Logger().Info("sierpinski: terminated",
		"rounds", r.stats.Rounds,
		"painted", r.stats.Painted,
		"candidateArea", candidate,
		"minArea", r.minArea)
}
