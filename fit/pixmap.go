package fit

import (
	"image"
	"image/color"
)

// Raster is random-access read of an RGB pixel grid. Coordinates are in
// [0, Width) × [0, Height).
type Raster interface {
	Width() int
	Height() int
	RGB(x, y int) (r, g, b uint8)
}

// Pixmap is a row-major RGBA pixel buffer, 4 bytes per pixel,
// non-premultiplied. It implements Raster and image.Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent black pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage copies img into a new pixmap.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < pm.height; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pm.data[y*pm.width*4:(y+1)*pm.width*4], src.Pix[i:i+pm.width*4])
		}
		return pm
	}
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pm.Set(x, y, c)
		}
	}
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// RGB returns the color channels at (x, y), or black outside the pixmap.
func (p *Pixmap) RGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2]
}

// Set stores c at (x, y). Coordinates outside the pixmap are ignored.
func (p *Pixmap) Set(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
