package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/gogpu/lenslab"
)

// Canvas is a CPU-backed drawing surface implementing lenslab.Drawer.
//
// Scene coordinates map one-to-one to pixels; points outside the image
// are clipped.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// NewCanvasFromImage draws directly into img without copying.
func NewCanvasFromImage(img *image.RGBA) *Canvas {
	return &Canvas{dc: gg.NewContextForRGBA(img)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Image returns the backing image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// Polyline implements lenslab.Drawer.
func (c *Canvas) Polyline(points []lenslab.Vec2, closed bool, style lenslab.Style) {
	if len(points) == 0 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	if closed {
		c.dc.ClosePath()
	}
	c.paint(style)
}

// Circle implements lenslab.Drawer.
func (c *Canvas) Circle(center lenslab.Vec2, radius float64, style lenslab.Style) {
	c.dc.NewSubPath()
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.paint(style)
}

// paint fills or strokes the current path with style and clears it.
func (c *Canvas) paint(style lenslab.Style) {
	c.dc.SetColor(style.Color)
	if style.Fill {
		c.dc.Fill()
		return
	}
	w := style.Width
	if w <= 0 {
		w = 1
	}
	c.dc.SetLineWidth(w)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.dc.SetDash(style.Dash...)
	c.dc.Stroke()
	c.dc.SetDash()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas as PNG to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
