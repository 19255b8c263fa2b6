package gowot

import "iter"

// Map is a read-only, insertion-ordered map as produced by MapField and
// consumed by builders that replace a whole map member.
type Map[T any] struct {
	keys []string
	vals map[string]T
}

// MapOf builds a Map in the order of pairs. A repeated name overwrites the
// value but keeps its first position.
func MapOf[T any](pairs ...MapEntry[T]) Map[T] {
	var m Map[T]
	for _, p := range pairs {
		m.put(p.Name, p.Value)
	}
	return m
}

// MapEntry is one name/value pair of a Map.
type MapEntry[T any] struct {
	Name  string
	Value T
}

func (m *Map[T]) put(k string, v T) {
	if m.vals == nil {
		m.vals = make(map[string]T)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Len returns the number of entries.
func (m Map[T]) Len() int { return len(m.keys) }

// Keys returns the names in document order.
func (m Map[T]) Keys() []string { return append([]string(nil), m.keys...) }

// Get returns the value for name.
func (m Map[T]) Get(name string) (T, bool) {
	v, ok := m.vals[name]
	return v, ok
}

// All iterates entries in document order.
func (m Map[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}
