package fit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/lenslab"
)

// ErrUnknownLensType is returned for a lens type other than convex,
// concave or unknown.
var ErrUnknownLensType = errors.New("fit: unknown lens type")

// LensParams is the persisted form of a fitted lens, used to rehydrate it
// into a scene.
type LensParams struct {
	Type            LensType `json:"type" yaml:"type"`
	AngleRad        float64  `json:"angleRad" yaml:"angleRad"`
	Aperture        float64  `json:"aperture" yaml:"aperture"`
	Thickness       float64  `json:"thickness" yaml:"thickness"`
	CurvatureRadius float64  `json:"curvatureRadius" yaml:"curvatureRadius"`
}

// DefaultLensParams returns the values used for fields missing from a
// persisted record.
func DefaultLensParams() LensParams {
	return LensParams{
		Type:            TypeUnknown,
		AngleRad:        0,
		Aperture:        160,
		Thickness:       60,
		CurvatureRadius: 200,
	}
}

// Validate checks the lens type. An empty type is treated as unknown.
func (p *LensParams) Validate() error {
	switch p.Type {
	case "":
		p.Type = TypeUnknown
	case TypeConvex, TypeConcave, TypeUnknown:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLensType, string(p.Type))
	}
	return nil
}

// ParseLensParams decodes a JSON record, filling missing fields with
// DefaultLensParams.
func ParseLensParams(r io.Reader) (LensParams, error) {
	p := DefaultLensParams()
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return LensParams{}, fmt.Errorf("fit: decode lens params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return LensParams{}, err
	}
	return p, nil
}

// Params returns the persisted form of r.
func (r FitResult) Params() LensParams {
	return LensParams{
		Type:            r.Type,
		AngleRad:        r.Angle,
		Aperture:        r.Aperture,
		Thickness:       r.Thickness,
		CurvatureRadius: r.CurvatureRadius,
	}
}

// Result returns the fit result described by p, centered at center.
func (p LensParams) Result(center lenslab.Vec2) FitResult {
	return FitResult{
		Type:            p.Type,
		Center:          center,
		Angle:           p.AngleRad,
		Aperture:        p.Aperture,
		Thickness:       p.Thickness,
		CurvatureRadius: p.CurvatureRadius,
	}
}
