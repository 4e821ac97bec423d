package sierpinski

import (
	"image"
	"image/color"

	"github.com/gogpu/sierpinski/internal/raster"
)

// Pixmap represents a rectangular RGB pixel buffer.
// A new pixmap is all zero (black). Pixmap implements Sink and image.Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
	rast   *raster.Rasterizer
}

// NewPixmap creates a new pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
		rast:   raster.NewRasterizer(),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 3
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Black.
func (p *Pixmap) GetPixel(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	i := (y*p.width + x) * 3
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// fillSpan fills the inclusive, pre-clipped span [x1, x2] on row y.
func (p *Pixmap) fillSpan(x1, x2, y int, c RGB) {
	row := p.data[(y*p.width+x1)*3 : (y*p.width+x2+1)*3]
	for i := 0; i < len(row); i += 3 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGB) {
	for i := 0; i < len(p.data); i += 3 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
	}
}

// FillTriangle fills t, boundary included, with a solid color.
// Prior pixel values are overwritten; there is no blending or anti-aliasing.
// Parts of t outside the pixmap are clipped.
func (p *Pixmap) FillTriangle(t Triangle, c RGB) {
	pts := [3]raster.Point{
		{X: t[0].X, Y: t[0].Y},
		{X: t[1].X, Y: t[1].Y},
		{X: t[2].X, Y: t[2].Y},
	}
	p.rast.FillPolygon(rasterTarget{p}, pts[:], raster.RGB(c))
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return saveAs(p.ToImage(), path, formatPNG)
}

// Save saves the pixmap, choosing the format from the file extension.
// See Save.
func (p *Pixmap) Save(path string) error {
	return Save(p.ToImage(), path)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// rasterTarget adapts Pixmap to the raster package's pixel interfaces.
type rasterTarget struct {
	p *Pixmap
}

func (t rasterTarget) Width() int  { return t.p.width }
func (t rasterTarget) Height() int { return t.p.height }

func (t rasterTarget) SetPixel(x, y int, c raster.RGB) {
	t.p.SetPixel(x, y, RGB(c))
}

func (t rasterTarget) FillSpan(x1, x2, y int, c raster.RGB) {
	t.p.fillSpan(x1, x2, y, RGB(c))
}
