package lenslab

import (
	"fmt"
	"image/color"
)

// Kind identifies a component variant.
type Kind int

const (
	// KindNone is the zero Kind. No component reports it.
	KindNone Kind = iota

	// KindEmitter is a laser emitter.
	KindEmitter

	// KindMirror is a plane mirror.
	KindMirror

	// KindPrism is an equilateral triangular prism.
	KindPrism

	// KindConvexLens is a biconvex spherical lens.
	KindConvexLens

	// KindConcaveLens is a biconcave spherical lens.
	KindConcaveLens

	// KindOutline is a decorative polyline without optical behavior.
	KindOutline
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmitter:
		return "emitter"
	case KindMirror:
		return "mirror"
	case KindPrism:
		return "prism"
	case KindConvexLens:
		return "convex-lens"
	case KindConcaveLens:
		return "concave-lens"
	case KindOutline:
		return "outline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Component is an element of an optical scene.
//
// The set of implementations is closed: [Emitter], [Mirror], [Prism],
// [Lens] and [Outline]. Code that dispatches on components uses a type
// switch over exactly these types.
type Component interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Bounds returns the axis-aligned bounding box.
	Bounds() Rect

	// Draw emits the component's drawing primitives to d.
	Draw(d Drawer)

	// Rotated returns a copy rotated by delta radians about its center.
	Rotated(delta float64) Component

	// Translated returns a copy moved by offset.
	Translated(offset Vec2) Component

	component()
}

// Style describes how a drawing primitive is stroked or filled.
type Style struct {
	Color color.NRGBA
	Width float64
	Fill  bool
	Dash  []float64
}

// Drawer receives drawing primitives. The presentation layer implements it;
// see package render for an image-backed implementation.
type Drawer interface {
	// Polyline draws connected segments through points, closing the shape
	// back to the first point when closed is true.
	Polyline(points []Vec2, closed bool, style Style)

	// Circle draws a circle.
	Circle(center Vec2, radius float64, style Style)
}

// argb converts a packed 0xAARRGGBB value to color.NRGBA.
func argb(v uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Palette used by the component Draw methods.
var (
	ColorRay         = argb(0xFFFF0000)
	ColorEmitter     = argb(0xFF000000)
	ColorMirror      = argb(0xFF3F51B5)
	ColorHandle      = argb(0xFFFFA000)
	ColorPrism       = argb(0xFF00BCD4)
	ColorConvexLens  = argb(0xFF4CAF50)
	ColorConcaveLens = argb(0xFF9C27B0)
	ColorOutline     = argb(0xFF1E88E5)
	ColorHelper      = argb(0xFF9E9E9E)
)
