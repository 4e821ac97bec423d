package sierpinski

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// format identifies an output encoder.
type format int

const (
	formatPNG format = iota
	formatBMP
	formatTIFF
)

// formatFor maps a file extension to an encoder.
func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return formatPNG, nil
	case ".bmp":
		return formatBMP, nil
	case ".tif", ".tiff":
		return formatTIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes img to w in the format implied by name's extension
// (.png, .bmp, .tif or .tiff).
func Encode(w io.Writer, img image.Image, name string) error {
	f, err := formatFor(name)
	if err != nil {
		return err
	}
	return encode(w, img, f)
}

func encode(w io.Writer, img image.Image, f format) error {
	switch f {
	case formatBMP:
		return bmp.Encode(w, img)
	case formatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// Save writes img to path, choosing the encoder from the extension:
// .png, .bmp, .tif or .tiff. An unknown extension fails with
// ErrUnsupportedFormat before the file is created.
func Save(img image.Image, path string) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}
	return saveAs(img, path, f)
}

func saveAs(img image.Image, path string, f format) (err error) {
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("sierpinski: save %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sierpinski: save %s: %w", path, cerr)
		}
	}()

	if err := encode(out, img, f); err != nil {
		return fmt.Errorf("sierpinski: encode %s: %w", path, err)
	}
	return nil
}
