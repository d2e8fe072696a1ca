package fit

import "github.com/gogpu/lenslab"

// Mask is a binary pixel mask. Set pixels hold 255, clear pixels 0.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates an empty mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// On reports whether (x, y) is set. Coordinates outside the mask are
// clear.
func (m *Mask) On(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x] != 0
}

// Set sets or clears (x, y). Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	var v uint8
	if on {
		v = 255
	}
	m.data[y*m.width+x] = v
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.width, m.height)
	copy(c.data, m.data)
	return c
}

// Points returns the set pixels on the stride grid in row-major order.
func (m *Mask) Points(stride int) []lenslab.Vec2 {
	if stride < 1 {
		stride = 1
	}
	var pts []lenslab.Vec2
	for y := 0; y < m.height; y += stride {
		for x := 0; x < m.width; x += stride {
			if m.data[y*m.width+x] != 0 {
				pts = append(pts, lenslab.V2(float64(x), float64(y)))
			}
		}
	}
	return pts
}

// neighbors returns the number of set pixels in the 3×3 block centered
// on the interior pixel (x, y).
func (m *Mask) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		row := (y + dy) * m.width
		for dx := -1; dx <= 1; dx++ {
			if m.data[row+x+dx] != 0 {
				n++
			}
		}
	}
	return n
}

// Dilate returns the 3×3 dilation of m. The 1-pixel border of the result
// is clear.
func (m *Mask) Dilate() *Mask {
	out := NewMask(m.width, m.height)
	for y := 1; y < m.height-1; y++ {
		for x := 1; x < m.width-1; x++ {
			if m.neighbors(x, y) > 0 {
				out.data[y*m.width+x] = 255
			}
		}
	}
	return out
}

// Erode returns the 3×3 erosion of m. The 1-pixel border of the result
// is clear.
func (m *Mask) Erode() *Mask {
	out := NewMask(m.width, m.height)
	for y := 1; y < m.height-1; y++ {
		for x := 1; x < m.width-1; x++ {
			if m.neighbors(x, y) == 9 {
				out.data[y*m.width+x] = 255
			}
		}
	}
	return out
}

// Close returns the morphological closing of m: dilation then erosion.
func (m *Mask) Close() *Mask { return m.Dilate().Erode() }
