package fit

import (
	"math"

	"github.com/gogpu/lenslab"
)

// Mirror estimation thresholds.
const (
	minMirrorPoints = 20
	minMirrorSpan   = 4
)

// MirrorFitResult holds mirror parameters inferred from an image, in
// image pixels.
type MirrorFitResult struct {
	Center lenslab.Vec2 `json:"center"`
	Length float64      `json:"length"`
	Angle  float64      `json:"angleRad"`

	// Decoration is the fitted segment as a polyline, for display.
	Decoration []lenslab.Vec2 `json:"decoration,omitempty"`
}

// EstimateMirror infers a straight mirror from a silhouette in img.
//
// The principal axis of the mask points gives the mirror direction. Points
// within a band around the mean across-axis offset (half-width
// max(3, 25% of the across-axis range)) give the endpoints. It returns
// false with fewer than 20 points or an along-axis range of 4 pixels or
// less.
func EstimateMirror(img Raster, opts ...Option) (MirrorFitResult, bool) {
	o := buildOptions(opts)
	m, _ := extractMask(img, o)
	pts := m.Points(o.stride)
	if len(pts) < minMirrorPoints {
		return MirrorFitResult{}, false
	}

	f := principalFrame(pts)
	width, length := f.project(pts)
	if span(length) <= minMirrorSpan {
		return MirrorFitResult{}, false
	}

	meanW := 0.0
	for _, w := range width {
		meanW += w
	}
	meanW /= float64(len(width))
	half := math.Max(3, span(width)*0.25)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range pts {
		if math.Abs(width[i]-meanW) <= half {
			lo = math.Min(lo, length[i])
			hi = math.Max(hi, length[i])
		}
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return MirrorFitResult{}, false
	}

	a := f.mean.Add(f.major.Mul(lo))
	b := f.mean.Add(f.major.Mul(hi))
	return MirrorFitResult{
		Center:     a.Lerp(b, 0.5),
		Length:     hi - lo,
		Angle:      f.major.Angle(),
		Decoration: []lenslab.Vec2{a, b},
	}, true
}
