package lenslab

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// fingerprinter accumulates an xxhash digest of scene geometry.
type fingerprinter struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newFingerprinter() *fingerprinter {
	return &fingerprinter{d: xxhash.New()}
}

func (f *fingerprinter) u64(v uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])
}

func (f *fingerprinter) float(vs ...float64) {
	for _, v := range vs {
		f.u64(math.Float64bits(v))
	}
}

func (f *fingerprinter) vec(v Vec2) { f.float(v.X, v.Y) }

func (f *fingerprinter) component(c Component) {
	f.u64(uint64(c.Kind()))
	switch c := c.(type) {
	case Emitter:
		f.vec(c.Position)
		f.float(c.Angle)
	case Mirror:
		f.vec(c.Center)
		f.float(c.Length, c.Angle)
	case Prism:
		f.vec(c.Center)
		f.float(c.Side, c.Angle, c.Index)
	case Lens:
		f.vec(c.Center)
		f.float(c.Aperture, c.Thickness, c.CurvatureRadius, c.Angle, c.Index)
	case Outline:
		f.u64(uint64(len(c.Points)))
		for _, p := range c.Points {
			f.vec(p)
		}
		if c.Closed {
			f.u64(1)
		} else {
			f.u64(0)
		}
	}
}

// Fingerprint returns a 64-bit hash of the scene's viewport and
// components, in order. Equal scenes hash equally; component IDs do not
// contribute.
func Fingerprint(s *Scene) uint64 {
	f := newFingerprinter()
	f.vec(s.Viewport.Min)
	f.vec(s.Viewport.Max)
	for _, c := range s.Components() {
		f.component(c)
	}
	return f.d.Sum64()
}
