// Package scenefile reads and writes scene descriptions.
//
// A description lists a viewport and the scene's components grouped by
// kind. It is stored as YAML or JSON; the field names are the same in
// both. Angles are in radians. Omitted sizes and refractive indices take
// the lenslab defaults.
//
//	viewport: {width: 800, height: 600}
//	emitters:
//	  - position: {x: 100, y: 300}
//	    angleRad: 0
//	lenses:
//	  - shape: convex
//	    center: {x: 400, y: 300}
package scenefile
