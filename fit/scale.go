package fit

import (
	"math"

	"github.com/gogpu/lenslab"
)

// ScaleFactor returns the uniform scale mapping a srcW×srcH image into a
// dstW×dstH display while preserving aspect. Non-positive source sizes
// yield 1.
func ScaleFactor(srcW, srcH, dstW, dstH float64) float64 {
	if srcW <= 0 || srcH <= 0 {
		return 1
	}
	return math.Min(dstW/srcW, dstH/srcH)
}

// Scaled returns r with all lengths and the center scaled by s.
func (r FitResult) Scaled(s float64) FitResult {
	r.Center = r.Center.Mul(s)
	r.Aperture *= s
	r.Thickness *= s
	r.CurvatureRadius *= s
	return r
}

// Scaled returns r with all coordinates and lengths scaled by s.
func (r MirrorFitResult) Scaled(s float64) MirrorFitResult {
	r.Center = r.Center.Mul(s)
	r.Length *= s
	if r.Decoration != nil {
		r.Decoration = scalePoints(r.Decoration, s)
	}
	return r
}

func scalePoints(pts []lenslab.Vec2, s float64) []lenslab.Vec2 {
	out := make([]lenslab.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Mul(s)
	}
	return out
}
