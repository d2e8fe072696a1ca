package lenslab

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a scene has no component with the given ID.
var ErrNotFound = errors.New("lenslab: component not found")

type sceneEntry struct {
	id uuid.UUID
	c  Component
}

// Scene is an ordered collection of components inside a viewport.
//
// Every component gets a stable ID on insertion. Edits replace the stored
// value; values previously returned by Get or Components are never
// modified. Scene is not safe for concurrent use.
type Scene struct {
	// Viewport is the rectangle that terminates rays leaving the scene.
	Viewport Rect

	entries []sceneEntry
}

// NewScene creates an empty scene with the given viewport.
func NewScene(viewport Rect) *Scene {
	return &Scene{Viewport: viewport}
}

// Add appends c and returns its ID.
func (s *Scene) Add(c Component) uuid.UUID {
	id := uuid.New()
	s.entries = append(s.entries, sceneEntry{id: id, c: c})
	return id
}

// Len returns the number of components.
func (s *Scene) Len() int {
	return len(s.entries)
}

func (s *Scene) index(id uuid.UUID) int {
	for i, e := range s.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

// Get returns the component with the given ID.
func (s *Scene) Get(id uuid.UUID) (Component, bool) {
	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	return s.entries[i].c, true
}

// Remove deletes the component with the given ID, keeping the order of
// the rest.
func (s *Scene) Remove(id uuid.UUID) error {
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// Replace stores c under an existing ID.
func (s *Scene) Replace(id uuid.UUID, c Component) error {
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.entries[i].c = c
	return nil
}

// Rotate turns the component with the given ID by delta radians and
// returns the new value.
func (s *Scene) Rotate(id uuid.UUID, delta float64) (Component, error) {
	i := s.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	c := s.entries[i].c.Rotated(delta)
	s.entries[i].c = c
	return c, nil
}

// Translate moves the component with the given ID by offset and returns
// the new value.
func (s *Scene) Translate(id uuid.UUID, offset Vec2) (Component, error) {
	i := s.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	c := s.entries[i].c.Translated(offset)
	s.entries[i].c = c
	return c, nil
}

// IDs returns the component IDs in insertion order.
func (s *Scene) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}

// Components returns the components in insertion order.
func (s *Scene) Components() []Component {
	cs := make([]Component, len(s.entries))
	for i, e := range s.entries {
		cs[i] = e.c
	}
	return cs
}

// Emitters returns the emitters in insertion order.
func (s *Scene) Emitters() []Emitter {
	var out []Emitter
	for _, e := range s.entries {
		if em, ok := e.c.(Emitter); ok {
			out = append(out, em)
		}
	}
	return out
}

// Bounds returns the union of all component bounds, or the zero Rect for
// an empty scene.
func (s *Scene) Bounds() Rect {
	if len(s.entries) == 0 {
		return Rect{}
	}
	b := s.entries[0].c.Bounds()
	for _, e := range s.entries[1:] {
		b = b.Union(e.c.Bounds())
	}
	return b
}

// Draw draws every component in insertion order.
func (s *Scene) Draw(d Drawer) {
	for _, e := range s.entries {
		e.c.Draw(d)
	}
}
