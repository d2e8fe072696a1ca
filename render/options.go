package render

import (
	"image/color"

	"github.com/gogpu/lenslab"
)

// Default renderer settings.
const (
	DefaultRayWidth    = 3
	DefaultHelperWidth = 1.5
	normalLength       = 40
)

// Option configures a Renderer.
type Option func(*options)

type options struct {
	background color.NRGBA
	rayColor   color.NRGBA
	rayWidth   float64
	helpers    bool
}

func defaultOptions() options {
	return options{
		background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		rayColor:   lenslab.ColorRay,
		rayWidth:   DefaultRayWidth,
	}
}

// WithBackground sets the clear color. A zero alpha leaves the canvas
// transparent.
func WithBackground(c color.NRGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithRayStyle sets the color and width of traced paths. A non-positive
// width keeps the current one.
func WithRayStyle(c color.NRGBA, width float64) Option {
	return func(o *options) {
		o.rayColor = c
		if width > 0 {
			o.rayWidth = width
		}
	}
}

// WithHelpers enables surface normals, lens axes and focal points.
func WithHelpers(enabled bool) Option {
	return func(o *options) {
		o.helpers = enabled
	}
}
