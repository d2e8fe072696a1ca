package render

import (
	"math"

	"github.com/gogpu/lenslab"
)

// Renderer draws scenes and their traced paths. A Renderer holds only
// configuration and is safe for concurrent use.
type Renderer struct {
	opts options
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render creates a canvas the size of the scene viewport and draws s and
// paths into it.
func (r *Renderer) Render(s *lenslab.Scene, paths []lenslab.Path) *Canvas {
	w := int(s.Viewport.Max.X + 0.5)
	h := int(s.Viewport.Max.Y + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := NewCanvas(w, h)
	r.RenderTo(c, s, paths)
	return c
}

// RenderTo draws into an existing canvas: background, helpers when
// enabled, components in scene order, then paths.
func (r *Renderer) RenderTo(c *Canvas, s *lenslab.Scene, paths []lenslab.Path) {
	if r.opts.background.A != 0 {
		c.Clear(r.opts.background)
	}
	if r.opts.helpers {
		for _, comp := range s.Components() {
			DrawHelpers(c, comp)
		}
	}
	s.Draw(c)
	style := lenslab.Style{Color: r.opts.rayColor, Width: r.opts.rayWidth}
	for _, p := range paths {
		DrawPath(c, p, style)
	}
}

// DrawPath draws one traced path. Paths with fewer than two points are
// skipped.
func DrawPath(d lenslab.Drawer, p lenslab.Path, style lenslab.Style) {
	if len(p) < 2 {
		return
	}
	d.Polyline(p, false, style)
}

var helperStyle = lenslab.Style{
	Color: lenslab.ColorHelper,
	Width: DefaultHelperWidth,
	Dash:  []float64{6, 4},
}

// DrawHelpers draws construction lines for c: the normal of each mirror
// and prism face, and the optical axis and focal points of a lens.
func DrawHelpers(d lenslab.Drawer, c lenslab.Component) {
	switch c := c.(type) {
	case lenslab.Mirror:
		drawNormal(d, c.Segment().Midpoint(), c.Normal())
	case lenslab.Prism:
		for _, e := range c.Edges() {
			drawNormal(d, e.Midpoint(), c.OutwardNormal(e))
		}
	case lenslab.Lens:
		drawLensAxis(d, c)
	case lenslab.Emitter, lenslab.Outline:
	}
}

func drawNormal(d lenslab.Drawer, at, n lenslab.Vec2) {
	n = n.Normalize().Mul(normalLength)
	d.Polyline([]lenslab.Vec2{at.Sub(n), at.Add(n)}, false, helperStyle)
}

func drawLensAxis(d lenslab.Drawer, l lenslab.Lens) {
	f := l.FocalLength()
	reach := l.Thickness + normalLength
	if !math.IsInf(f, 0) {
		reach = math.Max(reach, math.Abs(f)+normalLength)
	}
	u := l.Axis().Mul(reach)
	d.Polyline([]lenslab.Vec2{l.Center.Sub(u), l.Center.Add(u)}, false, helperStyle)
	if math.IsInf(f, 0) {
		return
	}
	f1, f2 := l.Foci()
	dot := lenslab.Style{Color: lenslab.ColorHelper, Fill: true}
	d.Circle(f1, 5, dot)
	d.Circle(f2, 5, dot)
}
