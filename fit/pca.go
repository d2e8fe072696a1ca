package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/lenslab"
)

// frame is the principal-axis frame of a point cloud.
type frame struct {
	mean  lenslab.Vec2
	major lenslab.Vec2 // unit eigenvector of the larger eigenvalue
	minor lenslab.Vec2 // major rotated by +90°
}

// principalFrame computes the mean and principal axes of pts from the
// population covariance, using the closed-form 2×2 eigen-decomposition.
// An isotropic cloud gets the x axis as its major axis.
func principalFrame(pts []lenslab.Vec2) frame {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	n := float64(len(pts))
	mx, my := stat.Mean(xs, nil), stat.Mean(ys, nil)

	// stat.Covariance is the sample estimate; rescale to population.
	pop := (n - 1) / n
	sxx := stat.Covariance(xs, xs, nil) * pop
	syy := stat.Covariance(ys, ys, nil) * pop
	sxy := stat.Covariance(xs, ys, nil) * pop

	tr := sxx + syy
	det := sxx*syy - sxy*sxy
	lambda := tr/2 + math.Sqrt(math.Max(0, tr*tr/4-det))

	// Two closed-form eigenvector candidates; each degenerates to zero on
	// a different axis-aligned cloud, so keep the longer one.
	a := lenslab.V2(sxy, lambda-sxx)
	b := lenslab.V2(lambda-syy, sxy)
	v := a
	if b.LengthSq() > a.LengthSq() {
		v = b
	}
	if v.LengthSq() < 1e-12 {
		v = lenslab.V2(1, 0)
	}
	major := v.Normalize()
	return frame{
		mean:  lenslab.V2(mx, my),
		major: major,
		minor: major.Perp(),
	}
}

// project returns the coordinates of pts along the minor and major axes,
// relative to the mean.
func (f frame) project(pts []lenslab.Vec2) (minor, major []float64) {
	minor = make([]float64, len(pts))
	major = make([]float64, len(pts))
	for i, p := range pts {
		d := p.Sub(f.mean)
		minor[i] = d.Dot(f.minor)
		major[i] = d.Dot(f.major)
	}
	return minor, major
}

// span returns max(v) - min(v), or 0 for an empty slice.
func span(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Max(v) - floats.Min(v)
}
