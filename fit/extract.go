package fit

import (
	"fmt"
	"math"

	"github.com/gogpu/lenslab"
)

// MaskSource tells which classifier produced a mask.
type MaskSource int

const (
	// SourceMarker masks pixels matching the marker color.
	SourceMarker MaskSource = iota

	// SourceGradient masks luminance edges.
	SourceGradient
)

// String returns "marker" or "gradient".
func (s MaskSource) String() string {
	switch s {
	case SourceMarker:
		return "marker"
	case SourceGradient:
		return "gradient"
	default:
		return fmt.Sprintf("MaskSource(%d)", int(s))
	}
}

// ExtractMask classifies the pixels of img on the stride grid.
//
// Pixels whose hue, saturation and value fall in the marker band are set.
// When fewer than 20 pixels match, the marker mask is discarded for a
// luminance-gradient mask (central differences inside the 1-pixel border)
// closed with one 3×3 dilate/erode pass.
func ExtractMask(img Raster, opts ...Option) (*Mask, MaskSource) {
	return extractMask(img, buildOptions(opts))
}

func extractMask(img Raster, o options) (*Mask, MaskSource) {
	w, h := img.Width(), img.Height()
	m := NewMask(w, h)

	count := 0
	for y := 0; y < h; y += o.stride {
		for x := 0; x < w; x += o.stride {
			hue, sat, val := hsv(img.RGB(x, y))
			if hue >= o.hueMin && hue <= o.hueMax && sat >= o.minSaturation && val >= o.minValue {
				m.Set(x, y, true)
				count++
			}
		}
	}
	if count >= minMarkerPixels {
		return m, SourceMarker
	}

	lenslab.Logger().Debug("fit: marker mask too sparse, using gradient mask",
		"marker_pixels", count, "width", w, "height", h)
	return gradientMask(img, o).Close(), SourceGradient
}

// gradientMask sets stride-grid pixels whose luminance gradient magnitude
// exceeds the threshold.
func gradientMask(img Raster, o options) *Mask {
	w, h := img.Width(), img.Height()
	m := NewMask(w, h)
	lum := func(x, y int) float64 { return luminance(img.RGB(x, y)) }

	for y := 1; y < h-1; y += o.stride {
		for x := 1; x < w-1; x += o.stride {
			dx := lum(x+1, y) - lum(x-1, y)
			dy := lum(x, y+1) - lum(x, y-1)
			if math.Hypot(dx, dy) > o.gradThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}
