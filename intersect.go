package lenslab

import "math"

// Epsilon is the minimum parametric distance for a valid hit. It keeps a
// ray leaving a surface from immediately re-hitting that same surface.
const Epsilon = 1e-3

// Hit is a ray intersection at parametric distance T.
type Hit struct {
	T     float64
	Point Vec2
}

// IntersectRaySegment intersects a ray with a segment.
//
// It solves origin + t*dir = A + u*(B-A) and accepts the hit when
// t > Epsilon and u lies in [0, 1]. Parallel lines never intersect.
func IntersectRaySegment(ray Ray, seg Segment) (Hit, bool) {
	p := ray.Origin
	r := ray.Dir
	s := seg.B.Sub(seg.A)

	rxs := r.Cross(s)
	if rxs == 0 {
		return Hit{}, false
	}

	qmp := seg.A.Sub(p)
	t := qmp.Cross(s) / rxs
	u := qmp.Cross(r) / rxs
	if t > Epsilon && u >= 0 && u <= 1 {
		return Hit{T: t, Point: ray.At(t)}, true
	}
	return Hit{}, false
}

// IntersectRayCircle intersects a ray with a circle and returns the
// nearest hit at or beyond Epsilon.
//
// The smaller root is preferred; when it is too close (the ray starts on
// or inside the circle) the larger root is tried instead.
func IntersectRayCircle(ray Ray, center Vec2, radius float64) (Hit, bool) {
	m := ray.Origin.Sub(center)
	b := m.Dot(ray.Dir)
	c := m.Dot(m) - radius*radius

	// Origin outside and pointing away.
	if c > 0 && b > 0 {
		return Hit{}, false
	}
	discr := b*b - c
	if discr < 0 {
		return Hit{}, false
	}
	sq := math.Sqrt(discr)
	t := -b - sq
	if t < Epsilon {
		t = -b + sq
	}
	if t < Epsilon {
		return Hit{}, false
	}
	return Hit{T: t, Point: ray.At(t)}, true
}
