package fit

// Extraction defaults. Lens fits and contour tracing sample every pixel
// at DefaultFineStride; mirror fits and ExtractMask use DefaultStride.
const (
	DefaultStride            = 2
	DefaultFineStride        = 1
	DefaultHueMin            = 190
	DefaultHueMax            = 260
	DefaultMinSaturation     = 0.25
	DefaultMinValue          = 0.2
	DefaultGradientThreshold = 0.12

	// minMarkerPixels is the marker pixel count below which extraction
	// falls back to the gradient mask.
	minMarkerPixels = 20
)

// Option configures mask extraction and estimation.
type Option func(*options)

type options struct {
	stride        int
	fineStride    int
	hueMin        float64
	hueMax        float64
	minSaturation float64
	minValue      float64
	gradThreshold float64
}

func defaultOptions() options {
	return options{
		stride:        DefaultStride,
		fineStride:    DefaultFineStride,
		hueMin:        DefaultHueMin,
		hueMax:        DefaultHueMax,
		minSaturation: DefaultMinSaturation,
		minValue:      DefaultMinValue,
		gradThreshold: DefaultGradientThreshold,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStride samples every n-th pixel in both directions for every fit,
// replacing both default strides. Values below 1 sample every pixel.
func WithStride(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.stride, o.fineStride = n, n
	}
}

// fine returns o with the fine stride as the sampling stride.
func (o options) fine() options {
	o.stride = o.fineStride
	return o
}

// WithHueRange sets the marker hue band in degrees, inclusive.
func WithHueRange(lo, hi float64) Option {
	return func(o *options) {
		o.hueMin, o.hueMax = lo, hi
	}
}

// WithMinSaturation sets the minimum marker saturation in [0, 1].
func WithMinSaturation(s float64) Option {
	return func(o *options) { o.minSaturation = s }
}

// WithMinValue sets the minimum marker value (brightness) in [0, 1].
func WithMinValue(v float64) Option {
	return func(o *options) { o.minValue = v }
}

// WithGradientThreshold sets the luminance gradient magnitude above which
// the fallback edge mask marks a pixel.
func WithGradientThreshold(t float64) Option {
	return func(o *options) { o.gradThreshold = t }
}
