package sierpinski

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testPixmap() *Pixmap {
	pm := NewPixmap(16, 12)
	pm.FillTriangle(MaxCenteredEquilateral(16, 12), White)
	pm.SetPixel(0, 0, RGB{9, 8, 7})
	return pm
}

func TestSaveFormats(t *testing.T) {
	dir := t.TempDir()
	pm := testPixmap()

	tests := []struct {
		name   string
		decode func(*os.File) (image.Image, error)
	}{
		{"out.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"out.PNG", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"out.bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
		{"out.tif", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }},
		{"out.tiff", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := pm.Save(path); err != nil {
				t.Fatalf("Save(%q) error = %v", path, err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			assertSameImage(t, pm, img)
		})
	}
}

func TestSavePNG(t *testing.T) {
	// SavePNG ignores the extension.
	path := filepath.Join(t.TempDir(), "fractal.out")
	pm := testPixmap()
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	assertSameImage(t, pm, img)
}

func TestSaveUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractal.jpg")
	err := Save(testPixmap(), path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save() error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Save() created %s for an unsupported format", path)
	}
}

func TestSaveIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "fractal.png")
	err := testPixmap().SavePNG(path)
	if err == nil {
		t.Fatal("SavePNG() into a missing directory succeeded")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("SavePNG() error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	pm := testPixmap()
	if err := Encode(&buf, pm, "x.bmp"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	assertSameImage(t, pm, img)

	if err := Encode(&buf, pm, "x.gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func assertSameImage(t *testing.T, pm *Pixmap, img image.Image) {
	t.Helper()
	if img.Bounds().Dx() != pm.Width() || img.Bounds().Dy() != pm.Height() {
		t.Fatalf("decoded size = %v, want %dx%d", img.Bounds().Size(), pm.Width(), pm.Height())
	}
	b := img.Bounds()
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			want := pm.GetPixel(x, y)
			if got := FromColor(img.At(b.Min.X+x, b.Min.Y+y)); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
