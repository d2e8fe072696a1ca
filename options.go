package lenslab

// Tracer defaults.
const (
	DefaultMaxBounces     = 12
	DefaultEscapeDistance = 1000
	DefaultAmbientIndex   = 1.0
)

// TraceOption configures a Tracer during creation.
//
// Example:
//
//	t := lenslab.NewTracer(
//	    lenslab.WithMaxBounces(32),
//	    lenslab.WithObserver(lenslab.LogObserver(nil)),
//	)
type TraceOption func(*traceOptions)

// traceOptions holds optional configuration for Tracer creation.
type traceOptions struct {
	maxBounces     int
	escapeDistance float64
	ambientIndex   float64
	observer       Observer
}

// defaultOptions returns the default tracer options.
func defaultOptions() traceOptions {
	return traceOptions{
		maxBounces:     DefaultMaxBounces,
		escapeDistance: DefaultEscapeDistance,
		ambientIndex:   DefaultAmbientIndex,
		observer:       nopObserver{},
	}
}

// WithMaxBounces sets the interaction budget per ray. Negative values
// are treated as zero.
func WithMaxBounces(n int) TraceOption {
	return func(o *traceOptions) {
		if n < 0 {
			n = 0
		}
		o.maxBounces = n
	}
}

// WithEscapeDistance sets how far a ray is extended when it misses every
// viewport edge. Non-positive values are ignored.
func WithEscapeDistance(d float64) TraceOption {
	return func(o *traceOptions) {
		if d > 0 {
			o.escapeDistance = d
		}
	}
}

// WithAmbientIndex sets the refractive index outside all bodies.
// Non-positive values are ignored.
func WithAmbientIndex(n float64) TraceOption {
	return func(o *traceOptions) {
		if n > 0 {
			o.ambientIndex = n
		}
	}
}

// WithObserver injects an Observer for trace events. A nil observer
// disables events.
func WithObserver(obs Observer) TraceOption {
	return func(o *traceOptions) {
		if obs == nil {
			obs = nopObserver{}
		}
		o.observer = obs
	}
}
