package sierpinski

import (
	"image"
	"image/color"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(3, 7, RGB{10, 20, 30})

	// Verify raw data directly
	i := (7*10 + 3) * 3
	data := pm.Data()
	if data[i+0] != 10 || data[i+1] != 20 || data[i+2] != 30 {
		t.Errorf("raw data mismatch: got (%d, %d, %d), want (10, 20, 30)",
			data[i+0], data[i+1], data[i+2])
	}
	if got := pm.GetPixel(3, 7); got != (RGB{10, 20, 30}) {
		t.Errorf("GetPixel(3, 7) = %v, want {10 20 30}", got)
	}
}

// TestPixmapOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Red)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, White)
		if got := pm.GetPixel(c.x, c.y); got != Black {
			t.Errorf("GetPixel(%d, %d) = %v, want Black", c.x, c.y, got)
		}
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := pm.GetPixel(x, y); got != Red {
				t.Fatalf("out-of-bounds write modified (%d,%d): got %v", x, y, got)
			}
		}
	}
}

func TestNewPixmapZeroed(t *testing.T) {
	pm := NewPixmap(4, 3)
	if len(pm.Data()) != 4*3*3 {
		t.Fatalf("len(Data()) = %d, want %d", len(pm.Data()), 4*3*3)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d, want 0", i, v)
		}
	}

	empty := NewPixmap(-5, 3)
	if empty.Width() != 0 || len(empty.Data()) != 0 {
		t.Errorf("NewPixmap(-5, 3) = %dx%d with %d bytes, want empty",
			empty.Width(), empty.Height(), len(empty.Data()))
	}
}

func TestPixmapFillTriangle(t *testing.T) {
	pm := NewPixmap(20, 20)
	tri := Tri(Pt(10, 1), Pt(1, 18), Pt(19, 18))
	pm.FillTriangle(tri, White)

	for _, p := range tri {
		if got := pm.GetPixel(p.X, p.Y); got != White {
			t.Errorf("vertex %v = %v, want White", p, got)
		}
	}
	for x := 1; x <= 19; x++ {
		if got := pm.GetPixel(x, 18); got != White {
			t.Errorf("base pixel (%d,18) = %v, want White", x, got)
		}
	}
	if got := pm.GetPixel(10, 12); got != White {
		t.Errorf("interior pixel = %v, want White", got)
	}
	if got := pm.GetPixel(1, 1); got != Black {
		t.Errorf("exterior pixel = %v, want Black", got)
	}
	if got := pm.GetPixel(10, 19); got != Black {
		t.Errorf("pixel below base = %v, want Black", got)
	}

	// Overwrite with the hole.
	center, _ := Subdivide(tri)
	pm.FillTriangle(center, Red)
	if got := pm.GetPixel(10, 15); got != Red {
		t.Errorf("hole pixel = %v, want Red", got)
	}
	if got := pm.GetPixel(10, 2); got != White {
		t.Errorf("apex region = %v, want White", got)
	}
}

func TestPixmapFillTriangleClipped(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.FillTriangle(Tri(Pt(4, -50), Pt(-50, 60), Pt(60, 60)), White)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := pm.GetPixel(x, y); got != White {
				t.Fatalf("pixel (%d,%d) = %v, want White", x, y, got)
			}
		}
	}
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(2, 1, RGB{1, 2, 3})

	var img image.Image = pm
	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(3,2)", got)
	}
	if img.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not RGBAModel")
	}
	if got := img.At(2, 1); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("At(2, 1) = %v, want {1 2 3 255}", got)
	}

	rgba := pm.ToImage()
	if got := rgba.RGBAAt(2, 1); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("ToImage().RGBAAt(2, 1) = %v, want {1 2 3 255}", got)
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("ToImage().RGBAAt(0, 0) = %v, want opaque black", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.Clear(Magenta)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := pm.GetPixel(x, y); got != Magenta {
				t.Fatalf("pixel (%d,%d) = %v, want Magenta", x, y, got)
			}
		}
	}
}
