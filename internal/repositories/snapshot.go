package repositories

import (
	"context"
	"slices"
	"sync"
	"time"
)

// SnapshotSource serves the last successful load of a backing Loader.
// The first All loads lazily; Refresh reloads and keeps the previous
// snapshot when the load fails.
type SnapshotSource[T any] struct {
	backing Loader[T]

	mu        sync.RWMutex
	records   []T
	loaded    bool
	version   uint64
	fetchedAt time.Time
}

func NewSnapshotSource[T any](backing Loader[T]) *SnapshotSource[T] {
	return &SnapshotSource[T]{backing: backing}
}

func (s *SnapshotSource[T]) All(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	if s.loaded {
		out := slices.Clone(s.records)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), nil
}

// Refresh reloads from the backing loader.
func (s *SnapshotSource[T]) Refresh(ctx context.Context) error {
	records, err := s.backing.All(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.loaded = true
	s.version++
	s.fetchedAt = time.Now()
	return nil
}

func (s *SnapshotSource[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// FetchedAt is the time of the last successful load.
func (s *SnapshotSource[T]) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}
