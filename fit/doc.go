// Package fit recovers optical component parameters from a raster image
// of a drawn or photographed outline.
//
// # Pipeline
//
// [ExtractMask] classifies pixels against a marker color (by default a
// blue hue band) on a sub-sampled grid. When too few pixels match, it
// falls back to a luminance-gradient edge mask closed with one 3×3
// dilate/erode pass. [TraceBoundary] walks the mask boundary with Moore
// neighborhood tracing and [ConvexHull] covers masks too small to trace.
//
// [EstimateLens] projects the mask points onto their principal axes,
// fits one circle per lens face and classifies the profile as convex or
// concave. [EstimateMirror] fits a straight segment instead.
//
//	img := fit.FromImage(decoded)
//	res, ok := fit.EstimateLens(img, fit.WithStride(1))
//	if ok {
//	    lens := res.Scaled(fit.ScaleFactor(srcW, srcH, dstW, dstH)).Lens(1.5)
//	    scene.Add(lens)
//	}
//
// Nothing in this package fails hard: degenerate input yields a fallback
// or ok == false.
package fit
