package scenefile

import (
	"errors"
	"fmt"

	"github.com/gogpu/lenslab"
	"github.com/gogpu/lenslab/fit"
)

// Errors returned while building a scene from a description.
var (
	ErrUnknownLensShape = errors.New("scenefile: unknown lens shape")
	ErrInvalidViewport  = errors.New("scenefile: invalid viewport")
	ErrShortOutline     = errors.New("scenefile: outline needs at least two points")
)

// File is a scene description.
type File struct {
	Viewport     Viewport     `json:"viewport" yaml:"viewport"`
	Emitters     []Emitter    `json:"emitters,omitempty" yaml:"emitters,omitempty"`
	Mirrors      []Mirror     `json:"mirrors,omitempty" yaml:"mirrors,omitempty"`
	Prisms       []Prism      `json:"prisms,omitempty" yaml:"prisms,omitempty"`
	Lenses       []Lens       `json:"lenses,omitempty" yaml:"lenses,omitempty"`
	FittedLenses []FittedLens `json:"fittedLenses,omitempty" yaml:"fittedLenses,omitempty"`
	Outlines     []Outline    `json:"outlines,omitempty" yaml:"outlines,omitempty"`
}

// Viewport is the scene size; the origin is the top-left corner.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Point is a position in scene coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (p Point) vec() lenslab.Vec2 { return lenslab.V2(p.X, p.Y) }

func pointOf(v lenslab.Vec2) Point { return Point{X: v.X, Y: v.Y} }

// Emitter is a laser source.
type Emitter struct {
	Position Point   `json:"position" yaml:"position"`
	AngleRad float64 `json:"angleRad" yaml:"angleRad"`
}

// Mirror is a plane mirror. A zero length takes lenslab.DefaultMirrorLength.
type Mirror struct {
	Center   Point   `json:"center" yaml:"center"`
	Length   float64 `json:"length,omitempty" yaml:"length,omitempty"`
	AngleRad float64 `json:"angleRad" yaml:"angleRad"`
}

// Prism is an equilateral prism.
type Prism struct {
	Center   Point   `json:"center" yaml:"center"`
	Side     float64 `json:"side,omitempty" yaml:"side,omitempty"`
	AngleRad float64 `json:"angleRad" yaml:"angleRad"`
	Index    float64 `json:"index,omitempty" yaml:"index,omitempty"`
}

// Lens is a lens with an explicit shape, "convex" or "concave".
type Lens struct {
	Shape           string  `json:"shape" yaml:"shape"`
	Center          Point   `json:"center" yaml:"center"`
	Aperture        float64 `json:"aperture,omitempty" yaml:"aperture,omitempty"`
	Thickness       float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	CurvatureRadius float64 `json:"curvatureRadius,omitempty" yaml:"curvatureRadius,omitempty"`
	AngleRad        float64 `json:"angleRad" yaml:"angleRad"`
	Index           float64 `json:"index,omitempty" yaml:"index,omitempty"`
}

// FittedLens is a lens persisted from an image fit. Missing parameters
// take fit.DefaultLensParams, an unknown type becomes convex and a missing
// center is the middle of the viewport.
type FittedLens struct {
	fit.LensParams `yaml:",inline"`

	Center *Point  `json:"center,omitempty" yaml:"center,omitempty"`
	Index  float64 `json:"index,omitempty" yaml:"index,omitempty"`
}

// Outline is a decorative polyline.
type Outline struct {
	Points []Point `json:"points" yaml:"points"`
	Closed bool    `json:"closed,omitempty" yaml:"closed,omitempty"`
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

// Scene builds the described scene. Components are added by kind in field
// order: emitters, mirrors, prisms, lenses, fitted lenses, outlines.
func (f *File) Scene() (*lenslab.Scene, error) {
	if f.Viewport.Width <= 0 || f.Viewport.Height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidViewport, f.Viewport.Width, f.Viewport.Height)
	}
	s := lenslab.NewScene(lenslab.R(0, 0, f.Viewport.Width, f.Viewport.Height))

	for _, e := range f.Emitters {
		s.Add(lenslab.NewEmitter(e.Position.vec(), e.AngleRad))
	}
	for _, m := range f.Mirrors {
		s.Add(lenslab.Mirror{
			Center: m.Center.vec(),
			Length: orDefault(m.Length, lenslab.DefaultMirrorLength),
			Angle:  m.AngleRad,
		})
	}
	for _, p := range f.Prisms {
		s.Add(lenslab.Prism{
			Center: p.Center.vec(),
			Side:   orDefault(p.Side, lenslab.DefaultPrismSide),
			Angle:  p.AngleRad,
			Index:  orDefault(p.Index, lenslab.DefaultIndex),
		})
	}
	for i, l := range f.Lenses {
		shape, err := parseShape(l.Shape)
		if err != nil {
			return nil, fmt.Errorf("lens %d: %w", i, err)
		}
		s.Add(lenslab.Lens{
			Shape:           shape,
			Center:          l.Center.vec(),
			Aperture:        orDefault(l.Aperture, lenslab.DefaultAperture),
			Thickness:       orDefault(l.Thickness, lenslab.DefaultThickness),
			CurvatureRadius: orDefault(l.CurvatureRadius, lenslab.DefaultCurvatureRadius),
			Angle:           l.AngleRad,
			Index:           orDefault(l.Index, lenslab.DefaultIndex),
		})
	}
	for i, fl := range f.FittedLenses {
		p := fl.withDefaults()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("fitted lens %d: %w", i, err)
		}
		center := s.Viewport.Center()
		if fl.Center != nil {
			center = fl.Center.vec()
		}
		s.Add(p.Result(center).Lens(fl.Index))
	}
	for i, o := range f.Outlines {
		if len(o.Points) < 2 {
			return nil, fmt.Errorf("outline %d: %w", i, ErrShortOutline)
		}
		pts := make([]lenslab.Vec2, len(o.Points))
		for j, p := range o.Points {
			pts[j] = p.vec()
		}
		s.Add(lenslab.NewOutline(pts, o.Closed))
	}
	return s, nil
}

// withDefaults fills zero sizes from fit.DefaultLensParams.
func (fl FittedLens) withDefaults() fit.LensParams {
	p := fl.LensParams
	def := fit.DefaultLensParams()
	p.Aperture = orDefault(p.Aperture, def.Aperture)
	p.Thickness = orDefault(p.Thickness, def.Thickness)
	p.CurvatureRadius = orDefault(p.CurvatureRadius, def.CurvatureRadius)
	return p
}

func parseShape(s string) (lenslab.LensShape, error) {
	switch s {
	case "convex", "":
		return lenslab.Convex, nil
	case "concave":
		return lenslab.Concave, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLensShape, s)
	}
}

// FromScene describes s. Every lens is written as a shaped lens.
func FromScene(s *lenslab.Scene) *File {
	f := &File{Viewport: Viewport{Width: s.Viewport.Width(), Height: s.Viewport.Height()}}
	for _, c := range s.Components() {
		switch c := c.(type) {
		case lenslab.Emitter:
			f.Emitters = append(f.Emitters, Emitter{Position: pointOf(c.Position), AngleRad: c.Angle})
		case lenslab.Mirror:
			f.Mirrors = append(f.Mirrors, Mirror{Center: pointOf(c.Center), Length: c.Length, AngleRad: c.Angle})
		case lenslab.Prism:
			f.Prisms = append(f.Prisms, Prism{
				Center: pointOf(c.Center), Side: c.Side, AngleRad: c.Angle, Index: c.Index,
			})
		case lenslab.Lens:
			f.Lenses = append(f.Lenses, Lens{
				Shape:           c.Shape.String(),
				Center:          pointOf(c.Center),
				Aperture:        c.Aperture,
				Thickness:       c.Thickness,
				CurvatureRadius: c.CurvatureRadius,
				AngleRad:        c.Angle,
				Index:           c.Index,
			})
		case lenslab.Outline:
			pts := make([]Point, len(c.Points))
			for i, p := range c.Points {
				pts[i] = pointOf(p)
			}
			f.Outlines = append(f.Outlines, Outline{Points: pts, Closed: c.Closed})
		}
	}
	return f
}
