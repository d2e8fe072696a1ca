package lenslab

import "math"

// Tracer walks rays through a set of components.
//
// A Tracer holds only configuration and is safe for concurrent use as
// long as its Observer is.
type Tracer struct {
	opts traceOptions
}

// NewTracer creates a tracer with the given options.
func NewTracer(opts ...TraceOption) *Tracer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracer{opts: o}
}

// MaxBounces returns the interaction budget per ray.
func (t *Tracer) MaxBounces() int { return t.opts.maxBounces }

// surfaceKind tags the optical surface a hit landed on.
type surfaceKind int

const (
	surfaceMirror surfaceKind = iota
	surfacePrismEdge
	surfaceLensArc
)

// surfaceHit is the nearest hit of one trace step.
type surfaceHit struct {
	Hit
	kind  surfaceKind
	index int // position of the owning component
	seg   Segment
	arc   Arc
}

// TraceScene traces one ray per emitter in scene order and returns one
// path per emitter.
func (t *Tracer) TraceScene(s *Scene) []Path {
	components := s.Components()
	var paths []Path
	for _, c := range components {
		if e, ok := c.(Emitter); ok {
			paths = append(paths, t.Trace(e.Ray(), components, s.Viewport))
		}
	}
	return paths
}

// Trace follows ray through components and returns the visited points,
// starting at the ray origin.
//
// Each step picks the nearest surface hit among all mirrors, prism edges
// and lens faces. Mirrors reflect. Prisms and lenses refract, tracking the
// current medium and the single body the ray is inside; total internal
// reflection reflects without changing either. A ray that hits nothing
// ends on the nearest edge of bounds, or escapeDistance further along if
// it misses them all. Tracing stops after MaxBounces+1 interactions
// without a terminal point.
func (t *Tracer) Trace(ray Ray, components []Component, bounds Rect) Path {
	obs := t.opts.observer
	ambient := t.opts.ambientIndex

	ray.Dir = ray.Dir.Normalize()
	path := Path{ray.Origin}
	medium := ambient
	inside := -1

	for bounce := 0; bounce <= t.opts.maxBounces; bounce++ {
		h, ok := nearestHit(ray, components)
		if !ok {
			end, kind := t.terminate(ray, bounds)
			obs.Observe(Event{Kind: kind, Bounce: bounce, Point: end, Dir: ray.Dir})
			return append(path, end)
		}
		path = append(path, h.Point)

		ev := Event{Bounce: bounce, Point: h.Point, Surface: components[h.index].Kind()}
		var dir Vec2
		switch h.kind {
		case surfaceMirror:
			dir = Reflect(ray.Dir, h.seg)
			ev.Kind = EventReflect

		case surfacePrismEdge:
			body := components[h.index].(Prism)
			dir, medium, inside, ev = t.crossBoundary(ray.Dir, h.seg.Normal(), body.Index,
				h.index, medium, inside, ev)
			if ev.Kind == EventTotalInternalReflection {
				dir = Reflect(ray.Dir, h.seg)
			}

		case surfaceLensArc:
			body := components[h.index].(Lens)
			normal := h.Point.Sub(h.arc.Center)
			dir, medium, inside, ev = t.crossBoundary(ray.Dir, normal, body.Index,
				h.index, medium, inside, ev)
			if ev.Kind == EventTotalInternalReflection {
				dir = ReflectNormal(ray.Dir, normal)
			}
		}

		ev.Dir = dir
		obs.Observe(ev)
		ray = Ray{Origin: h.Point, Dir: dir}
	}

	end, _ := path.Last()
	obs.Observe(Event{Kind: EventBounceLimit, Bounce: t.opts.maxBounces + 1, Point: end, Dir: ray.Dir})
	return path
}

// crossBoundary refracts dir through the surface of the refractive body at
// index. The ray enters the body unless it is already inside it. On
// success the medium and inside state move across the surface; on total
// internal reflection they are returned unchanged and ev is marked TIR so
// the caller can reflect.
func (t *Tracer) crossBoundary(dir, normal Vec2, bodyIndex float64, index int,
	medium float64, inside int, ev Event,
) (Vec2, float64, int, Event) {
	n1, n2 := medium, bodyIndex
	nextInside := index
	if inside == index {
		n1, n2 = bodyIndex, t.opts.ambientIndex
		nextInside = -1
	}
	ev.N1, ev.N2 = n1, n2

	out, ok := Refract(dir, normal, n1, n2)
	if !ok {
		ev.Kind = EventTotalInternalReflection
		return Vec2{}, medium, inside, ev
	}
	ev.Kind = EventRefract
	return out, n2, nextInside, ev
}

// terminate ends a ray that hits no component.
func (t *Tracer) terminate(ray Ray, bounds Rect) (Vec2, EventKind) {
	best := math.Inf(1)
	var end Vec2
	for _, e := range bounds.Edges() {
		if h, ok := IntersectRaySegment(ray, e); ok && h.T < best {
			best = h.T
			end = h.Point
		}
	}
	if !math.IsInf(best, 1) {
		return end, EventBoundary
	}
	return ray.At(t.opts.escapeDistance), EventEscape
}

// nearestHit returns the closest surface hit over all components.
func nearestHit(ray Ray, components []Component) (surfaceHit, bool) {
	var best surfaceHit
	found := false
	consider := func(h Hit, kind surfaceKind, index int, seg Segment, arc Arc) {
		if !found || h.T < best.T {
			best = surfaceHit{Hit: h, kind: kind, index: index, seg: seg, arc: arc}
			found = true
		}
	}

	for i, c := range components {
		switch c := c.(type) {
		case Mirror:
			seg := c.Segment()
			if h, ok := IntersectRaySegment(ray, seg); ok {
				consider(h, surfaceMirror, i, seg, Arc{})
			}
		case Prism:
			for _, edge := range c.Edges() {
				if h, ok := IntersectRaySegment(ray, edge); ok {
					consider(h, surfacePrismEdge, i, edge, Arc{})
				}
			}
		case Lens:
			for _, arc := range c.Surfaces() {
				h, ok := IntersectRayCircle(ray, arc.Center, arc.Radius)
				if ok && c.OnFace(arc, h.Point) {
					consider(h, surfaceLensArc, i, Segment{}, arc)
				}
			}
		case Emitter, Outline:
			// No optical surfaces.
		}
	}
	return best, found
}
