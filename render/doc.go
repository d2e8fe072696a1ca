// Package render draws lenslab scenes onto raster images.
//
// [Canvas] implements [lenslab.Drawer] on top of a fogleman/gg context, so
// every component can draw itself into it. [Renderer] composes a full
// frame: background, optional optical helpers, components, then traced
// ray paths on top.
//
//	s := lenslab.NewScene(lenslab.R(0, 0, 800, 600))
//	s.Add(lenslab.NewEmitter(lenslab.V2(100, 300), 0))
//	s.Add(lenslab.NewConvexLens(lenslab.V2(400, 300)))
//
//	r := render.NewRenderer(render.WithHelpers(true))
//	c := r.Render(s, lenslab.NewTracer().TraceScene(s))
//	_ = c.SavePNG("scene.png")
package render
