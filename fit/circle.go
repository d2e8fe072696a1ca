package fit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/lenslab"
)

// Circle is a fitted circle.
type Circle struct {
	Center lenslab.Vec2
	Radius float64
}

// FitCircle fits a circle to pts by algebraic least squares.
//
// It solves the normal equations of x² + y² = 2·cx·x + 2·cy·y + d for
// (cx, cy, d) with LU decomposition and partial pivoting; the radius is
// sqrt(cx² + cy² + d). Points are centered on their mean first. Fewer
// than 3 points, collinear points or a singular system yield false.
func FitCircle(pts []lenslab.Vec2) (Circle, bool) {
	if len(pts) < 3 {
		return Circle{}, false
	}
	var mean lenslab.Vec2
	for _, p := range pts {
		mean = mean.Add(p)
	}
	mean = mean.Div(float64(len(pts)))

	var a11, a12, a13, a22, a23, b1, b2, b3 float64
	for _, p := range pts {
		x, y := p.X-mean.X, p.Y-mean.Y
		z := x*x + y*y
		a11 += 4 * x * x
		a12 += 4 * x * y
		a13 += 2 * x
		a22 += 4 * y * y
		a23 += 2 * y
		b1 += 2 * x * z
		b2 += 2 * y * z
		b3 += z
	}
	n := float64(len(pts))

	a := mat.NewDense(3, 3, []float64{
		a11, a12, a13,
		a12, a22, a23,
		a13, a23, n,
	})
	b := mat.NewVecDense(3, []float64{b1, b2, b3})

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return Circle{}, false
	}
	cx, cy, d := sol.AtVec(0), sol.AtVec(1), sol.AtVec(2)
	r2 := cx*cx + cy*cy + d
	if r2 <= 0 || math.IsNaN(r2) || math.IsInf(r2, 0) {
		return Circle{}, false
	}
	return Circle{Center: mean.Add(lenslab.V2(cx, cy)), Radius: math.Sqrt(r2)}, true
}
