package lenslab

import "math"

// Prism defaults.
const (
	DefaultPrismSide = 160
	DefaultIndex     = 1.5
)

// Prism is an equilateral triangular prism.
type Prism struct {
	Center Vec2
	Side   float64
	Angle  float64
	Index  float64
}

// NewPrism creates a prism with the default side length and index.
func NewPrism(center Vec2, angle float64) Prism {
	return Prism{Center: center, Side: DefaultPrismSide, Angle: angle, Index: DefaultIndex}
}

// Vertices returns the three corners, the first at Angle from the center.
func (p Prism) Vertices() [3]Vec2 {
	r := p.Side / math.Sqrt(3) // circumradius
	var v [3]Vec2
	for i := range v {
		theta := p.Angle + float64(i)*2*math.Pi/3
		v[i] = p.Center.Add(FromAngle(theta).Mul(r))
	}
	return v
}

// Edges returns the three refracting faces.
func (p Prism) Edges() [3]Segment {
	v := p.Vertices()
	return [3]Segment{
		{A: v[0], B: v[1]},
		{A: v[1], B: v[2]},
		{A: v[2], B: v[0]},
	}
}

// OutwardNormal returns the unit normal of edge pointing away from the
// prism's center.
func (p Prism) OutwardNormal(edge Segment) Vec2 {
	n := edge.Normal()
	if n.Dot(p.Center.Sub(edge.Midpoint())) > 0 {
		n = n.Neg()
	}
	return n
}

// Kind implements Component.
func (Prism) Kind() Kind { return KindPrism }

// Bounds implements Component.
func (p Prism) Bounds() Rect {
	v := p.Vertices()
	return BoundsOf(v[:])
}

// Draw implements Component.
func (p Prism) Draw(d Drawer) {
	v := p.Vertices()
	d.Polyline(v[:], true, Style{Color: ColorPrism, Width: 5})
}

// Rotated implements Component.
func (p Prism) Rotated(delta float64) Component {
	p.Angle += delta
	return p
}

// Translated implements Component.
func (p Prism) Translated(offset Vec2) Component {
	p.Center = p.Center.Add(offset)
	return p
}

func (Prism) component() {}
