package lenslab

import (
	"math"
	"testing"
)

func buildScene() *Scene {
	s := NewScene(R(0, 0, 800, 600))
	s.Add(NewEmitter(V2(100, 300), 0))
	s.Add(NewMirror(V2(400, 300), math.Pi/4))
	s.Add(NewConvexLens(V2(600, 300)))
	return s
}

func TestFingerprint(t *testing.T) {
	a, b := buildScene(), buildScene()
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("equal scenes with different IDs hash differently")
	}

	edits := map[string]func(s *Scene){
		"rotate": func(s *Scene) {
			_, _ = s.Rotate(s.IDs()[1], 0.01)
		},
		"translate": func(s *Scene) {
			_, _ = s.Translate(s.IDs()[2], V2(1, 0))
		},
		"add outline": func(s *Scene) {
			s.Add(NewOutline([]Vec2{V2(0, 0), V2(1, 1)}, false))
		},
		"viewport": func(s *Scene) {
			s.Viewport.Max.X = 801
		},
	}
	base := Fingerprint(a)
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			s := buildScene()
			edit(s)
			if Fingerprint(s) == base {
				t.Errorf("fingerprint unchanged after %s", name)
			}
		})
	}
}

func TestCachedTracer(t *testing.T) {
	rec := &recorder{}
	ct := NewCachedTracer(NewTracer(WithObserver(rec)), 0)

	s := buildScene()
	first := ct.TraceScene(s)
	traced := len(rec.events)
	if traced == 0 {
		t.Fatal("first call did not trace")
	}

	second := ct.TraceScene(buildScene())
	if len(rec.events) != traced {
		t.Error("second call on an equal scene traced again")
	}
	if len(first) != len(second) || &first[0][0] != &second[0][0] {
		t.Error("second call did not return the cached paths")
	}

	_, _ = s.Rotate(s.IDs()[1], 0.1)
	ct.TraceScene(s)
	if len(rec.events) == traced {
		t.Error("edited scene was served from the cache")
	}

	st := ct.Stats()
	if st.Hits != 1 || st.Misses != 2 {
		t.Errorf("hits/misses = %d/%d, want 1/2", st.Hits, st.Misses)
	}

	ct.Invalidate()
	if ct.Stats().Len != 0 {
		t.Error("Invalidate kept entries")
	}
}

func TestCachedTracer_OptionsAffectKey(t *testing.T) {
	a := NewCachedTracer(NewTracer(), 4)
	b := NewCachedTracer(NewTracer(WithMaxBounces(3)), 4)
	if a.seed == b.seed {
		t.Error("tracers with different budgets share a cache seed")
	}
}
