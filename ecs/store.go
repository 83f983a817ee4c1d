package ecs

import (
	"io"
	"sort"
)

// anyStore provides type-erased operations so the Registry can manage every
// store uniformly without knowing the concrete component type
type anyStore interface {
	removeEntity(id EntityID) bool
}

// Store owns every instance of one component type, keyed by entity
type Store[T any] struct {
	components map[EntityID]*T
}

// NewStore creates an empty component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[EntityID]*T),
	}
}

// Add constructs a default instance for id and returns it.
// An existing instance is released and replaced.
func (s *Store[T]) Add(id EntityID) *T {
	c := new(T)
	if d, ok := any(c).(Defaulter); ok {
		d.Default()
	}
	s.Set(id, c)
	return c
}

// Set attaches an already built instance, replacing any existing one
func (s *Store[T]) Set(id EntityID, c *T) {
	if old, exists := s.components[id]; exists && old != c {
		release(old)
	}
	s.components[id] = c
}

// Get returns the instance for id or nil
func (s *Store[T]) Get(id EntityID) *T {
	return s.components[id]
}

// Has checks if id has an instance in this store
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.components[id]
	return ok
}

// Remove destroys the instance for id. Removing an absent instance is a no-op.
func (s *Store[T]) Remove(id EntityID) {
	s.removeEntity(id)
}

// Len returns the number of instances
func (s *Store[T]) Len() int {
	return len(s.components)
}

// Entities returns the ids holding an instance, in ascending order
func (s *Store[T]) Entities() []EntityID {
	ids := make([]EntityID, 0, len(s.components))
	for id := range s.components {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear destroys every instance
func (s *Store[T]) Clear() {
	for _, c := range s.components {
		release(c)
	}
	s.components = make(map[EntityID]*T)
}

func (s *Store[T]) removeEntity(id EntityID) bool {
	c, exists := s.components[id]
	if !exists {
		return false
	}
	delete(s.components, id)
	release(c)
	return true
}

// release gives components holding external resources a chance to free them
func release(c any) {
	if closer, ok := c.(io.Closer); ok {
		_ = closer.Close()
	}
}

// View is a read-only window onto a store owned by a Registry. Attaching and
// removing components goes through the Registry so signatures stay in sync.
type View[T any] struct {
	store *Store[T]
}

// Get returns the instance for id or nil
func (v View[T]) Get(id EntityID) *T {
	if v.store == nil {
		return nil
	}
	return v.store.Get(id)
}

// Has checks if id has an instance
func (v View[T]) Has(id EntityID) bool {
	return v.store != nil && v.store.Has(id)
}

// Len returns the number of instances
func (v View[T]) Len() int {
	if v.store == nil {
		return 0
	}
	return v.store.Len()
}

// Entities returns the ids holding an instance, in ascending order
func (v View[T]) Entities() []EntityID {
	if v.store == nil {
		return nil
	}
	return v.store.Entities()
}
