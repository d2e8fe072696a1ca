package lenslab

import "math"

// Segment is a line segment between two endpoints.
type Segment struct {
	A, B Vec2
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Vec2) Segment {
	return Segment{A: a, B: b}
}

// Direction returns the unit direction from A to B.
func (s Segment) Direction() Vec2 {
	return s.B.Sub(s.A).Normalize()
}

// Normal returns the unit normal of the segment (direction rotated
// counter-clockwise). Its orientation relative to any ray is arbitrary.
func (s Segment) Normal() Vec2 {
	return s.Direction().Perp().Normalize()
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Vec2 {
	return s.A.Lerp(s.B, 0.5)
}

// DistanceTo returns the distance from p to the closest point on the segment.
func (s Segment) DistanceTo(p Vec2) float64 {
	ab := s.B.Sub(s.A)
	ap := p.Sub(s.A)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return ap.Length()
	}
	t := math.Max(0, math.Min(1, ap.Dot(ab)/lenSq))
	return p.Distance(s.A.Add(ab.Mul(t)))
}

// Ray is a half-line with an origin and a unit direction.
type Ray struct {
	Origin Vec2
	Dir    Vec2
}

// NewRay creates a ray, normalizing dir.
func NewRay(origin, dir Vec2) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Vec2
}

// R is a convenience function to create a Rect from its corner coordinates.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: V2(math.Min(x0, x1), math.Min(y0, y1)), Max: V2(math.Max(x0, x1), math.Max(y0, y1))}
}

// BoundsOf returns the smallest Rect containing all points.
// An empty slice yields the zero Rect.
func BoundsOf(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the center point.
func (r Rect) Center() Vec2 { return r.Min.Lerp(r.Max, 0.5) }

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: V2(math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)),
		Max: V2(math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)),
	}
}

// Edges returns the four boundary segments in the order top, right,
// bottom, left.
func (r Rect) Edges() [4]Segment {
	tl := r.Min
	tr := V2(r.Max.X, r.Min.Y)
	br := r.Max
	bl := V2(r.Min.X, r.Max.Y)
	return [4]Segment{
		{A: tl, B: tr},
		{A: tr, B: br},
		{A: br, B: bl},
		{A: bl, B: tl},
	}
}

// Path is an ordered polyline produced by tracing one ray.
type Path []Vec2

// Length returns the total length of the polyline.
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i].Distance(p[i-1])
	}
	return total
}

// Last returns the final point of the path, or false if the path is empty.
func (p Path) Last() (Vec2, bool) {
	if len(p) == 0 {
		return Vec2{}, false
	}
	return p[len(p)-1], true
}
