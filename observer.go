package lenslab

import (
	"context"
	"fmt"
	"log/slog"
)

// EventKind classifies a trace step.
type EventKind int

const (
	// EventReflect is a mirror reflection.
	EventReflect EventKind = iota

	// EventRefract is a successful refraction into or out of a body.
	EventRefract

	// EventTotalInternalReflection is a failed refraction that reflected
	// instead.
	EventTotalInternalReflection

	// EventBoundary ends a path on a viewport edge.
	EventBoundary

	// EventEscape ends a path that missed every viewport edge.
	EventEscape

	// EventBounceLimit ends a path that exhausted its bounce budget.
	EventBounceLimit
)

// String returns a short lower-case name.
func (k EventKind) String() string {
	switch k {
	case EventReflect:
		return "reflect"
	case EventRefract:
		return "refract"
	case EventTotalInternalReflection:
		return "tir"
	case EventBoundary:
		return "boundary"
	case EventEscape:
		return "escape"
	case EventBounceLimit:
		return "bounce-limit"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes one step of a trace.
type Event struct {
	Kind EventKind

	// Bounce is the number of interactions before this one.
	Bounce int

	// Point is where the step happened.
	Point Vec2

	// Dir is the outgoing direction (incoming for terminal events).
	Dir Vec2

	// Surface is the kind of component hit, or KindNone for terminal events.
	Surface Kind

	// N1 and N2 are the refractive indices on both sides of the surface
	// for refraction and TIR events.
	N1, N2 float64
}

// Observer receives trace events.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// LogObserver returns an Observer that writes events to l at debug level.
// A nil l uses the package logger at the time of each event.
func LogObserver(l *slog.Logger) Observer {
	return ObserverFunc(func(e Event) {
		lg := l
		if lg == nil {
			lg = Logger()
		}
		if !lg.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		attrs := []slog.Attr{
			slog.String("kind", e.Kind.String()),
			slog.Int("bounce", e.Bounce),
			slog.Float64("x", e.Point.X),
			slog.Float64("y", e.Point.Y),
		}
		switch e.Kind {
		case EventReflect:
			attrs = append(attrs, slog.String("surface", e.Surface.String()))
		case EventRefract, EventTotalInternalReflection:
			attrs = append(attrs,
				slog.String("surface", e.Surface.String()),
				slog.Float64("n1", e.N1),
				slog.Float64("n2", e.N2),
			)
		}
		lg.LogAttrs(context.Background(), slog.LevelDebug, "trace step", attrs...)
	})
}
