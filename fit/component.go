package fit

import "github.com/gogpu/lenslab"

// minLensAspect is the thickness to aperture ratio below which a
// silhouette is treated as a mirror.
const minLensAspect = 0.08

// Lens builds a scene lens from r. Unknown profiles become convex. A
// non-positive index uses lenslab.DefaultIndex.
func (r FitResult) Lens(index float64) lenslab.Lens {
	if index <= 0 {
		index = lenslab.DefaultIndex
	}
	shape := lenslab.Convex
	if r.Type == TypeConcave {
		shape = lenslab.Concave
	}
	return lenslab.Lens{
		Shape:           shape,
		Center:          r.Center,
		Aperture:        r.Aperture,
		Thickness:       r.Thickness,
		CurvatureRadius: r.CurvatureRadius,
		Angle:           r.Angle,
		Index:           index,
	}
}

// Mirror builds a scene mirror from r.
func (r MirrorFitResult) Mirror() lenslab.Mirror {
	return lenslab.Mirror{Center: r.Center, Length: r.Length, Angle: r.Angle}
}

// Estimate is the outcome of fitting an image that may show either a lens
// or a mirror. Exactly one of Lens and Mirror is set.
type Estimate struct {
	Lens   *FitResult       `json:"lens,omitempty"`
	Mirror *MirrorFitResult `json:"mirror,omitempty"`

	// Contour is the traced silhouette, see ExtractContour.
	Contour []lenslab.Vec2 `json:"contour,omitempty"`
}

// Component builds the scene component for e.
func (e Estimate) Component() lenslab.Component {
	if e.Mirror != nil {
		return e.Mirror.Mirror()
	}
	return e.Lens.Lens(lenslab.DefaultIndex)
}

// Components returns the fitted component followed by its decorations:
// the contour as a closed outline and, for a mirror, the fitted segment
// as a thin helper-colored outline.
func (e Estimate) Components() []lenslab.Component {
	cs := []lenslab.Component{e.Component()}
	if len(e.Contour) >= 2 {
		cs = append(cs, lenslab.NewOutline(e.Contour, true))
	}
	if e.Mirror != nil && len(e.Mirror.Decoration) >= 2 {
		d := lenslab.NewOutline(e.Mirror.Decoration, false)
		d.Style = lenslab.Style{Color: lenslab.ColorHelper, Width: 2.5}
		cs = append(cs, d)
	}
	return cs
}

// Scaled returns e with its coordinates and lengths scaled by s.
func (e Estimate) Scaled(s float64) Estimate {
	if e.Lens != nil {
		l := e.Lens.Scaled(s)
		e.Lens = &l
	}
	if e.Mirror != nil {
		m := e.Mirror.Scaled(s)
		e.Mirror = &m
	}
	if e.Contour != nil {
		e.Contour = scalePoints(e.Contour, s)
	}
	return e
}

// EstimateAny fits img as a lens or a mirror and traces its contour.
//
// Silhouettes thinner than 8% of their aperture are fitted as mirrors;
// everything else, and anything the mirror fit rejects, as a lens.
func EstimateAny(img Raster, opts ...Option) (Estimate, bool) {
	var e Estimate
	lens, lensOK := EstimateLens(img, opts...)
	if lensOK && lens.Thickness >= lens.Aperture*minLensAspect {
		e.Lens = &lens
	} else if m, ok := EstimateMirror(img, opts...); ok {
		e.Mirror = &m
	} else if lensOK {
		e.Lens = &lens
	} else {
		return Estimate{}, false
	}
	e.Contour = ExtractContour(img, opts...)
	return e, true
}

// EstimateComponent fits img as a lens or a mirror and returns the scene
// component. See EstimateAny.
func EstimateComponent(img Raster, opts ...Option) (lenslab.Component, bool) {
	e, ok := EstimateAny(img, opts...)
	if !ok {
		return nil, false
	}
	return e.Component(), true
}

// EstimateComponents is EstimateComponent with the decorations of
// Estimate.Components. Coordinates are multiplied by scale; use
// ScaleFactor to fit the image into a display.
func EstimateComponents(img Raster, scale float64, opts ...Option) ([]lenslab.Component, bool) {
	e, ok := EstimateAny(img, opts...)
	if !ok {
		return nil, false
	}
	if scale != 1 {
		e = e.Scaled(scale)
	}
	return e.Components(), true
}
