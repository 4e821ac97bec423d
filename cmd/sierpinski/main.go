// Command sierpinski renders a 1024x1024 Sierpinski triangle to fractal.png.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/sierpinski"
)

const (
	width  = 1024
	height = 1024
	output = "fractal.png"
)

func main() {
	sierpinski.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	pm, stats, err := sierpinski.Render(width, height)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := pm.SavePNG(output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Fractal saved to %s (%dx%d, %d rounds, %d holes)\n",
		output, width, height, stats.Rounds, stats.Painted)
}
