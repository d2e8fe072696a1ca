// Package lenslab is a 2D geometric-optics core.
//
// # Overview
//
// lenslab models light rays interacting with plane mirrors, triangular
// prisms and spherical lenses. A [Tracer] walks one ray through a set of
// [Component] values, reflecting off mirrors and refracting through
// prisms and lenses (with total internal reflection), and returns the
// resulting polyline for rendering.
//
// Package fit recovers lens and mirror parameters from a raster image of a
// drawn outline. Package render draws scenes and traced paths to images,
// and package scenefile loads scenes from YAML or JSON.
//
// # Quick Start
//
//	scene := lenslab.NewScene(lenslab.Rect{Max: lenslab.V2(800, 600)})
//	scene.Add(lenslab.NewEmitter(lenslab.V2(50, 300), 0))
//	scene.Add(lenslab.NewConvexLens(lenslab.V2(400, 300)))
//
//	tracer := lenslab.NewTracer(lenslab.WithMaxBounces(16))
//	for _, path := range tracer.TraceScene(scene) {
//	    fmt.Println(path)
//	}
//
// # Coordinate System
//
// Scene coordinates are screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Components
//
// Components form a closed set: [Emitter], [Mirror], [Prism], [Lens] and
// [Outline]. They are plain values. Scene edits go through [Scene] methods
// that replace the stored value, so a value obtained before an edit is
// never changed by it.
//
// # Concurrency
//
// Tracing is synchronous and does not mutate the scene. A Scene must not be
// edited while a trace over it is running.
package lenslab
