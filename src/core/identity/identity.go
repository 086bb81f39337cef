// Package identity provides the per-entity-type identity map used by the
// repositories: at most one live object per persisted id.
//
// A Map is plain mutable state with no synchronization. Give every
// repository (and every test) its own Map and use it from one goroutine.
package identity

import "sort"

// Map caches entities of one type by primary key.
type Map[E any] struct {
	entries map[int64]E
}

// New returns an empty Map.
func New[E any]() *Map[E] {
	return &Map[E]{entries: make(map[int64]E)}
}

// Get returns the cached entity for id.
func (m *Map[E]) Get(id int64) (E, bool) {
	e, ok := m.entries[id]
	return e, ok
}

// Put registers e under id, replacing any previous entry.
func (m *Map[E]) Put(id int64, e E) {
	m.entries[id] = e
}

// Evict drops id. Evicting an unknown id is a no-op.
func (m *Map[E]) Evict(id int64) {
	delete(m.entries, id)
}

// Clear drops every entry.
func (m *Map[E]) Clear() {
	clear(m.entries)
}

// Len reports the number of cached entities.
func (m *Map[E]) Len() int {
	return len(m.entries)
}

// IDs returns the cached ids in ascending order.
func (m *Map[E]) IDs() []int64 {
	ids := make([]int64, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
