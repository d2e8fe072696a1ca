package lenslab

// Outline is a decorative polyline, typically a traced silhouette. It has
// no optical behavior; rays pass through it.
type Outline struct {
	Points []Vec2
	Closed bool
	Style  Style
}

// NewOutline creates an outline drawn in the default outline style.
// The points are copied.
func NewOutline(points []Vec2, closed bool) Outline {
	return Outline{
		Points: append([]Vec2(nil), points...),
		Closed: closed,
		Style:  Style{Color: ColorOutline, Width: 3.5},
	}
}

// Kind implements Component.
func (Outline) Kind() Kind { return KindOutline }

// Bounds implements Component.
func (o Outline) Bounds() Rect {
	return BoundsOf(o.Points)
}

// Draw implements Component.
func (o Outline) Draw(d Drawer) {
	if len(o.Points) < 2 {
		return
	}
	d.Polyline(o.Points, o.Closed, o.Style)
}

// Rotated implements Component. The outline turns about its bounds center.
func (o Outline) Rotated(delta float64) Component {
	pivot := o.Bounds().Center()
	pts := make([]Vec2, len(o.Points))
	for i, p := range o.Points {
		pts[i] = p.RotateAround(pivot, delta)
	}
	o.Points = pts
	return o
}

// Translated implements Component.
func (o Outline) Translated(offset Vec2) Component {
	pts := make([]Vec2, len(o.Points))
	for i, p := range o.Points {
		pts[i] = p.Add(offset)
	}
	o.Points = pts
	return o
}

func (Outline) component() {}
