// Package cache holds the latest decoded response per read-operation key.
// It is a snapshot store, not a read-through cache: reads always go to the
// network and overwrite the entry here, so an entry is only ever the most
// recent result, kept for synchronous re-reads by sibling components.
package cache

import "sync"

// Store is a generic keyed snapshot store.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

// Get retrieves the latest snapshot for key.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// Set stores or overwrites the snapshot for key.
func (s *Store[T]) Set(key string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = v
}

// Delete removes the snapshot for key.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// Len returns the number of stored snapshots.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
