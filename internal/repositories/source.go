package repositories

import (
	"context"
	"slices"
	"sync"
)

// Loader fetches every record of one collection.
type Loader[T any] interface {
	All(ctx context.Context) ([]T, error)
}

// Source is a Loader whose Version changes whenever its records do, so
// callers can key caches on it.
type Source[T any] interface {
	Loader[T]
	Version() uint64
}

// Replacer is implemented by sources whose records can be swapped in
// place, for example from a fixture overlay.
type Replacer[T any] interface {
	Replace(records []T)
}

// StaticSource serves an in-memory slice.
type StaticSource[T any] struct {
	mu      sync.RWMutex
	records []T
	version uint64
}

func NewStaticSource[T any](records []T) *StaticSource[T] {
	return &StaticSource[T]{records: slices.Clone(records), version: 1}
}

// All returns a copy of the records.
func (s *StaticSource[T]) All(context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), nil
}

func (s *StaticSource[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace swaps the records and bumps the version.
func (s *StaticSource[T]) Replace(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
	s.version++
}
