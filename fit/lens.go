package fit

import (
	"math"

	"github.com/gogpu/lenslab"
)

// LensType is the classified lens profile.
type LensType string

// Lens profiles.
const (
	TypeConvex  LensType = "convex"
	TypeConcave LensType = "concave"
	TypeUnknown LensType = "unknown"
)

// Lens estimation thresholds.
const (
	minLensPoints      = 40 // below this, resample at stride 1
	minLensPointsDense = 12
	minSidePoints      = 3
	minBandPoints      = 8
)

// FitResult holds lens parameters inferred from an image, in image pixels.
type FitResult struct {
	Type LensType `json:"type"`

	// Center is the mean of the silhouette points.
	Center lenslab.Vec2 `json:"center"`

	// Angle is the direction of the optical axis in radians.
	Angle           float64 `json:"angleRad"`
	Aperture        float64 `json:"aperture"`
	Thickness       float64 `json:"thickness"`
	CurvatureRadius float64 `json:"curvatureRadius"`
}

// lensPoints extracts mask points, resampling densely when the stride
// grid is too sparse.
func lensPoints(img Raster, o options) []lenslab.Vec2 {
	m, _ := extractMask(img, o)
	pts := m.Points(o.stride)
	if len(pts) >= minLensPoints {
		return pts
	}
	if o.stride != 1 {
		o.stride = 1
		m, _ = extractMask(img, o)
		pts = m.Points(1)
	}
	if len(pts) < minLensPointsDense {
		return nil
	}
	return pts
}

// EstimateLens infers lens parameters from a silhouette outline in img.
//
// The mask points are projected on their principal frame: the major axis
// spans the aperture and the optical axis is perpendicular to it. Each
// side of the optical center gets a least-squares circle, fitted on the
// points of the central 45% height band when at least 8 are there. The
// profile is convex when the center band is wider than the bands near
// the rim, concave when narrower; an inconclusive width comparison falls
// back to the side of the fitted circle centers. It returns false when
// the image has too few points. Points are sampled at DefaultFineStride
// unless WithStride says otherwise.
func EstimateLens(img Raster, opts ...Option) (FitResult, bool) {
	pts := lensPoints(img, buildOptions(opts).fine())
	if pts == nil {
		return FitResult{}, false
	}

	f := principalFrame(pts)
	axis, height := f.project(pts)

	aperture := span(height)
	bandHalf := math.Max(aperture*0.45, 6)

	var left, right, leftCentral, rightCentral []lenslab.Vec2
	for i, p := range pts {
		isLeft := axis[i] < 0
		if isLeft {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
		if math.Abs(height[i]) <= bandHalf {
			if isLeft {
				leftCentral = append(leftCentral, p)
			} else {
				rightCentral = append(rightCentral, p)
			}
		}
	}

	fallback := Circle{Center: f.mean, Radius: maxAbs(axis)}
	cL, cR := fallback, fallback
	if len(left) >= minSidePoints && len(right) >= minSidePoints {
		cL = fitSide(left, leftCentral, fallback)
		cR = fitSide(right, rightCentral, fallback)
	} else {
		lenslab.Logger().Debug("fit: lens side too sparse, using fallback circle",
			"left", len(left), "right", len(right))
	}

	bandWidth := func(center float64) (float64, bool) {
		half := math.Max(aperture*0.05, 4)
		lo, hi := math.Inf(1), math.Inf(-1)
		n := 0
		for i := range pts {
			if math.Abs(height[i]-center) <= half {
				lo = math.Min(lo, axis[i])
				hi = math.Max(hi, axis[i])
				n++
			}
		}
		if n < minBandPoints {
			return 0, false
		}
		return hi - lo, true
	}

	centerW, centerOK := bandWidth(0)
	thickness := centerW
	if !centerOK {
		thickness = span(axis)
	}
	topW, topOK := bandWidth(aperture * 0.45)
	botW, botOK := bandWidth(-aperture * 0.45)

	uL := cL.Center.Sub(f.mean).Dot(f.minor)
	uR := cR.Center.Sub(f.mean).Dot(f.minor)

	typ := classifyByArcCenters(uL, uR)
	if centerOK && topOK && botOK {
		edgeW := (topW + botW) / 2
		tol := math.Max(2, aperture*0.02)
		switch {
		case centerW > edgeW+tol:
			typ = TypeConvex
		case centerW+tol < edgeW:
			typ = TypeConcave
		}
	}

	return FitResult{
		Type:            typ,
		Center:          f.mean,
		Angle:           f.minor.Angle(),
		Aperture:        aperture,
		Thickness:       thickness,
		CurvatureRadius: (cL.Radius + cR.Radius) / 2,
	}, true
}

// fitSide fits one lens face, preferring the central band points.
func fitSide(all, central []lenslab.Vec2, fallback Circle) Circle {
	use := all
	if len(central) >= minBandPoints {
		use = central
	}
	c, ok := FitCircle(use)
	if !ok {
		lenslab.Logger().Debug("fit: singular circle fit, using fallback circle", "points", len(use))
		return fallback
	}
	return c
}

// classifyByArcCenters classifies a lens from the axial offsets of the
// circle centers fitted to its left (uL) and right (uR) faces. Convex
// faces bulge outward, so their centers lie across the lens body; concave
// face centers lie on their own side. Disagreeing sides are unknown.
func classifyByArcCenters(uL, uR float64) LensType {
	switch {
	case uL > 0 && uR < 0:
		return TypeConvex
	case uL < 0 && uR > 0:
		return TypeConcave
	default:
		return TypeUnknown
	}
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
