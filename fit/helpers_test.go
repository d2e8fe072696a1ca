package fit

import (
	"image/color"
	"math"

	"github.com/gogpu/lenslab"
)

var (
	white  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	marker = color.NRGBA{R: 30, G: 90, B: 230, A: 255}
	gray   = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

// blank returns a white pixmap.
func blank(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Fill(white)
	return pm
}

// stroke paints every pixel within width/2 of the polyline.
func stroke(pm *Pixmap, pts []lenslab.Vec2, closed bool, width float64, c color.NRGBA) {
	segs := make([]lenslab.Segment, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		segs = append(segs, lenslab.Seg(pts[i], pts[i+1]))
	}
	if closed && len(pts) > 2 {
		segs = append(segs, lenslab.Seg(pts[len(pts)-1], pts[0]))
	}
	half := width / 2
	for _, s := range segs {
		x0 := int(math.Max(0, math.Floor(math.Min(s.A.X, s.B.X)-half-1)))
		x1 := int(math.Min(float64(pm.Width()-1), math.Ceil(math.Max(s.A.X, s.B.X)+half+1)))
		y0 := int(math.Max(0, math.Floor(math.Min(s.A.Y, s.B.Y)-half-1)))
		y1 := int(math.Min(float64(pm.Height()-1), math.Ceil(math.Max(s.A.Y, s.B.Y)+half+1)))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if s.DistanceTo(lenslab.V2(float64(x), float64(y))) <= half {
					pm.Set(x, y, c)
				}
			}
		}
	}
}

// fillRect paints the inclusive pixel rectangle [x0, x1] × [y0, y1].
func fillRect(pm *Pixmap, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			pm.Set(x, y, c)
		}
	}
}

// lensImage draws the outline of l on a 400×400 white image.
func lensImage(l lenslab.Lens, c color.NRGBA) *Pixmap {
	pm := blank(400, 400)
	stroke(pm, l.Outline(), true, 2, c)
	return pm
}

func within(got, want, rel float64) bool {
	return math.Abs(got-want) <= rel*math.Abs(want)
}

// angleDiff returns the difference of two line directions modulo pi.
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), math.Pi)
	return math.Min(d, math.Pi-d)
}
