package lenslab

// Mirror defaults.
const (
	DefaultMirrorLength = 200

	// mirrorHandleOffset is the distance of the rotation handle from the
	// mirror line, along its normal.
	mirrorHandleOffset = 18
)

// Mirror is a flat, double-sided reflector.
type Mirror struct {
	Center Vec2
	Length float64
	Angle  float64
}

// NewMirror creates a mirror of the default length.
func NewMirror(center Vec2, angle float64) Mirror {
	return Mirror{Center: center, Length: DefaultMirrorLength, Angle: angle}
}

// Segment returns the reflecting surface.
func (m Mirror) Segment() Segment {
	half := FromAngle(m.Angle).Mul(m.Length / 2)
	return Segment{A: m.Center.Sub(half), B: m.Center.Add(half)}
}

// Normal returns the unit normal on the handle side.
func (m Mirror) Normal() Vec2 {
	return FromAngle(m.Angle).Normalize().Perp().Normalize()
}

// Handle returns the position of the rotation handle.
func (m Mirror) Handle() Vec2 {
	return m.Center.Add(m.Normal().Mul(mirrorHandleOffset))
}

// Kind implements Component.
func (Mirror) Kind() Kind { return KindMirror }

// Bounds implements Component.
func (m Mirror) Bounds() Rect {
	s := m.Segment()
	return BoundsOf([]Vec2{s.A, s.B})
}

// Draw implements Component.
func (m Mirror) Draw(d Drawer) {
	s := m.Segment()
	d.Polyline([]Vec2{s.A, s.B}, false, Style{Color: ColorMirror, Width: 6})
	d.Circle(m.Handle(), 10, Style{Color: ColorHandle, Fill: true})
}

// Rotated implements Component.
func (m Mirror) Rotated(delta float64) Component {
	m.Angle += delta
	return m
}

// Translated implements Component.
func (m Mirror) Translated(offset Vec2) Component {
	m.Center = m.Center.Add(offset)
	return m
}

func (Mirror) component() {}
