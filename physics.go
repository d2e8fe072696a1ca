package lenslab

import "math"

// Reflect mirrors dir about the normal of seg.
//
// The normal is oriented against the incoming direction first, so the
// result always leaves the reflecting side of the surface.
func Reflect(dir Vec2, seg Segment) Vec2 {
	return ReflectNormal(dir, seg.Normal())
}

// ReflectNormal mirrors dir about an arbitrary surface normal.
func ReflectNormal(dir, normal Vec2) Vec2 {
	n := normal.Normalize()
	if dir.Dot(n) > 0 {
		n = n.Neg()
	}
	d := dir.Dot(n)
	return dir.Sub(n.Mul(2 * d)).Normalize()
}

// Refract bends dir through a surface with the given normal, going from a
// medium of index n1 into one of index n2 (vector form of Snell's law).
//
// It returns false on total internal reflection; the caller reflects
// instead. The normal may point either way.
func Refract(dir, normal Vec2, n1, n2 float64) (Vec2, bool) {
	n := normal.Normalize()
	i := dir.Normalize()
	if i.Dot(n) > 0 {
		n = n.Neg()
	}
	eta := n1 / n2
	cosi := -i.Dot(n)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Vec2{}, false
	}
	t := i.Mul(eta).Add(n.Mul(eta*cosi - math.Sqrt(k)))
	return t.Normalize(), true
}

// CriticalAngle returns the total-internal-reflection threshold for light
// going from index n1 into n2, or false when n1 <= n2 (no TIR possible).
func CriticalAngle(n1, n2 float64) (float64, bool) {
	if n1 <= n2 {
		return 0, false
	}
	return math.Asin(n2 / n1), true
}
