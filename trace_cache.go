package lenslab

import (
	"github.com/gogpu/lenslab/internal/cache"
)

// DefaultTraceCacheSize is the number of scenes a CachedTracer remembers.
const DefaultTraceCacheSize = 64

// CachedTracer memoizes TraceScene results by scene fingerprint.
//
// Redrawing an unchanged scene returns the stored paths without tracing.
// Observer events are emitted only when a trace actually runs. The
// returned paths are shared between callers and must not be modified.
type CachedTracer struct {
	tracer *Tracer
	seed   uint64
	paths  *cache.Cache[uint64, []Path]
}

// NewCachedTracer wraps t with a cache of the given size. A size of 0 or
// less uses DefaultTraceCacheSize.
func NewCachedTracer(t *Tracer, size int) *CachedTracer {
	if size <= 0 {
		size = DefaultTraceCacheSize
	}
	f := newFingerprinter()
	f.u64(uint64(t.opts.maxBounces))
	f.float(t.opts.escapeDistance, t.opts.ambientIndex)
	return &CachedTracer{
		tracer: t,
		seed:   f.d.Sum64(),
		paths:  cache.New[uint64, []Path](size),
	}
}

// TraceScene returns the paths for s, tracing only on a cache miss.
func (c *CachedTracer) TraceScene(s *Scene) []Path {
	key := Fingerprint(s) ^ c.seed
	return c.paths.GetOrCreate(key, func() []Path {
		return c.tracer.TraceScene(s)
	})
}

// Invalidate drops all cached paths.
func (c *CachedTracer) Invalidate() {
	c.paths.Clear()
}

// Stats returns hit and miss counts of the underlying cache.
func (c *CachedTracer) Stats() cache.Stats {
	return c.paths.Stats()
}
