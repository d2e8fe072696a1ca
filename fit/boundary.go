package fit

import (
	"sort"

	"github.com/gogpu/lenslab"
)

// Moore neighborhood, clockwise in image coordinates starting west:
// W, NW, N, NE, E, SE, S, SW.
var (
	mooreDX = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
	mooreDY = [8]int{0, -1, -1, -1, 0, 1, 1, 1}
)

// minContourPoints is the boundary length below which a trace is
// considered degenerate.
const minContourPoints = 10

// isBoundary reports whether (x, y) is set and has a clear or
// out-of-bounds 8-neighbor.
func (m *Mask) isBoundary(x, y int) bool {
	if !m.On(x, y) {
		return false
	}
	for k := 0; k < 8; k++ {
		if !m.On(x+mooreDX[k], y+mooreDY[k]) {
			return true
		}
	}
	return false
}

// TraceBoundary walks the outer boundary of the first mask component in
// row-major order and returns the visited pixels, starting with the seed.
//
// Each step scans the 8 neighbors clockwise, starting just after the
// backtrack direction of the previous move. Tracing stops on returning to
// the seed once more than 10 points have been collected, when a pixel has
// no set neighbor, or after 4·w·h steps. An empty mask yields nil.
func TraceBoundary(m *Mask) []lenslab.Vec2 {
	sx, sy := -1, -1
seed:
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.isBoundary(x, y) {
				sx, sy = x, y
				break seed
			}
		}
	}
	if sx < 0 {
		return nil
	}

	contour := []lenslab.Vec2{lenslab.V2(float64(sx), float64(sy))}
	x, y := sx, sy
	prev := 7
	maxSteps := 4 * m.width * m.height
	for step := 0; step < maxSteps; step++ {
		moved := false
		for i := 0; i < 8; i++ {
			dir := (prev + 1 + i) % 8
			nx, ny := x+mooreDX[dir], y+mooreDY[dir]
			if m.On(nx, ny) {
				contour = append(contour, lenslab.V2(float64(nx), float64(ny)))
				x, y = nx, ny
				prev = (dir + 6) % 8
				moved = true
				break
			}
		}
		if !moved {
			break
		}
		if x == sx && y == sy && len(contour) > minContourPoints {
			break
		}
	}
	return contour
}

// ExtractContour extracts a mask from img at DefaultFineStride, or the
// WithStride stride, and returns its boundary. When the traced boundary is
// shorter than 10 points it returns the convex hull of the mask pixels on
// the stride grid instead.
func ExtractContour(img Raster, opts ...Option) []lenslab.Vec2 {
	o := buildOptions(opts).fine()
	m, _ := extractMask(img, o)
	if c := TraceBoundary(m); len(c) >= minContourPoints {
		return c
	}
	lenslab.Logger().Debug("fit: boundary too short, using convex hull")
	return ConvexHull(m.Points(o.stride))
}

// ConvexHull returns the convex hull of points using the monotone chain
// algorithm, counter-clockwise in a y-up frame. Collinear points are
// dropped. Fewer than 3 input
// points yield nil.
func ConvexHull(points []lenslab.Vec2) []lenslab.Vec2 {
	if len(points) < 3 {
		return nil
	}
	pts := append([]lenslab.Vec2(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	cross := func(o, a, b lenslab.Vec2) float64 {
		return a.Sub(o).Cross(b.Sub(o))
	}

	hull := make([]lenslab.Vec2, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1]
	if len(hull) < 3 {
		return nil
	}
	return hull
}
