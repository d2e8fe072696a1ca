package lenslab

import (
	"fmt"
	"math"
)

// Lens defaults.
const (
	DefaultAperture        = 200
	DefaultThickness       = 70
	DefaultCurvatureRadius = 220

	// lensOutlineSamples is the number of segments per face in Outline.
	lensOutlineSamples = 40
)

// LensShape selects the lens profile.
type LensShape int

const (
	// Convex lenses are thicker at the center than at the rim.
	Convex LensShape = iota

	// Concave lenses are thinner at the center than at the rim.
	Concave
)

// String returns "convex" or "concave".
func (s LensShape) String() string {
	switch s {
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	default:
		return fmt.Sprintf("LensShape(%d)", int(s))
	}
}

// Arc is one spherical face of a lens: part of the circle (Center, Radius).
//
// Facing is +1 or -1. A point p on the circle belongs to the physical face
// when (p - Center) projected on the lens axis has the sign of Facing; the
// rest of the circle does not exist.
type Arc struct {
	Center Vec2
	Radius float64
	Facing float64
}

// Lens is a symmetric spherical lens with two faces of equal curvature.
//
// The optical axis points along Angle; the aperture is measured across it.
type Lens struct {
	Shape           LensShape
	Center          Vec2
	Aperture        float64
	Thickness       float64
	CurvatureRadius float64
	Angle           float64
	Index           float64
}

// NewConvexLens creates a convex lens with default dimensions.
func NewConvexLens(center Vec2) Lens {
	return newLens(Convex, center)
}

// NewConcaveLens creates a concave lens with default dimensions.
func NewConcaveLens(center Vec2) Lens {
	return newLens(Concave, center)
}

func newLens(shape LensShape, center Vec2) Lens {
	return Lens{
		Shape:           shape,
		Center:          center,
		Aperture:        DefaultAperture,
		Thickness:       DefaultThickness,
		CurvatureRadius: DefaultCurvatureRadius,
		Index:           DefaultIndex,
	}
}

// Axis returns the unit optical axis.
func (l Lens) Axis() Vec2 {
	return FromAngle(l.Angle).Normalize()
}

// Transverse returns the unit direction across the aperture.
func (l Lens) Transverse() Vec2 {
	return l.Axis().Perp().Normalize()
}

// Surfaces returns the left (-axis) and right (+axis) faces.
//
// Face vertices sit at Center -/+ Axis*Thickness/2. Convex arc centers lie
// one radius from their vertex towards the lens body; concave arc centers
// lie one radius away from it.
func (l Lens) Surfaces() [2]Arc {
	u := l.Axis()
	r := l.CurvatureRadius
	left := l.Center.Sub(u.Mul(l.Thickness / 2))
	right := l.Center.Add(u.Mul(l.Thickness / 2))
	if l.Shape == Concave {
		return [2]Arc{
			{Center: left.Sub(u.Mul(r)), Radius: r, Facing: 1},
			{Center: right.Add(u.Mul(r)), Radius: r, Facing: -1},
		}
	}
	return [2]Arc{
		{Center: left.Add(u.Mul(r)), Radius: r, Facing: -1},
		{Center: right.Sub(u.Mul(r)), Radius: r, Facing: 1},
	}
}

// OnFace reports whether p, a point on arc's circle, lies on the physical
// lens face: within the aperture and on the arc's facing side.
func (l Lens) OnFace(arc Arc, p Vec2) bool {
	if math.Abs(p.Sub(l.Center).Dot(l.Transverse())) > l.Aperture/2 {
		return false
	}
	return p.Sub(arc.Center).Dot(l.Axis())*arc.Facing >= 0
}

// FocalLength returns the thin-lens focal length R / (2(n-1)), negative
// for concave lenses. An index of 1 yields an infinite focal length.
func (l Lens) FocalLength() float64 {
	if l.Index == 1 {
		return math.Inf(1)
	}
	f := l.CurvatureRadius / (2 * (l.Index - 1))
	if l.Shape == Concave {
		return -f
	}
	return f
}

// Foci returns the two focal points on the optical axis.
func (l Lens) Foci() (Vec2, Vec2) {
	off := l.Axis().Mul(l.FocalLength())
	return l.Center.Add(off), l.Center.Sub(off)
}

// WithFocusAt returns a copy whose curvature places a focal point at the
// axial distance of p from the center. The radius never drops below the
// minimum that keeps both faces inside the aperture.
func (l Lens) WithFocusAt(p Vec2) Lens {
	halfA := l.Aperture / 2
	proj := math.Abs(p.Sub(l.Center).Dot(l.Axis()))
	minR := math.Max(halfA+l.Thickness*0.5, halfA+9)
	if l.Shape == Concave {
		minR = math.Max(halfA+l.Thickness*0.9, halfA+9)
	}
	l.CurvatureRadius = math.Max(minR, proj*2*(l.Index-1))
	return l
}

// Outline returns the closed lens profile: the left face from top to
// bottom followed by the right face from bottom to top.
func (l Lens) Outline() []Vec2 {
	u := l.Axis()
	v := l.Transverse()
	arcs := l.Surfaces()
	clamp := math.Max(0, math.Min(l.Aperture/2, l.CurvatureRadius-1))

	point := func(a Arc, s float64) Vec2 {
		along := math.Sqrt(math.Max(0, a.Radius*a.Radius-s*s))
		return a.Center.Add(u.Mul(a.Facing * along)).Add(v.Mul(s))
	}

	pts := make([]Vec2, 0, 2*(lensOutlineSamples+1))
	for i := 0; i <= lensOutlineSamples; i++ {
		s := -clamp + 2*clamp*float64(i)/lensOutlineSamples
		pts = append(pts, point(arcs[0], s))
	}
	for i := lensOutlineSamples; i >= 0; i-- {
		s := -clamp + 2*clamp*float64(i)/lensOutlineSamples
		pts = append(pts, point(arcs[1], s))
	}
	return pts
}

// Kind implements Component.
func (l Lens) Kind() Kind {
	if l.Shape == Concave {
		return KindConcaveLens
	}
	return KindConvexLens
}

// Bounds implements Component.
func (l Lens) Bounds() Rect {
	return BoundsOf(l.Outline())
}

// Draw implements Component.
func (l Lens) Draw(d Drawer) {
	c := ColorConvexLens
	if l.Shape == Concave {
		c = ColorConcaveLens
	}
	d.Polyline(l.Outline(), true, Style{Color: c, Width: 5})
}

// Rotated implements Component.
func (l Lens) Rotated(delta float64) Component {
	l.Angle += delta
	return l
}

// Translated implements Component.
func (l Lens) Translated(offset Vec2) Component {
	l.Center = l.Center.Add(offset)
	return l
}

func (Lens) component() {}
