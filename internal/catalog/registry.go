package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"dashkit/internal/domain"
)

// Registry looks collections up by name.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Lister
	order []string
}

func NewRegistry() *Registry {
	return &Registry{byKey: map[string]Lister{}}
}

// Register adds l. Names must be unique.
func (r *Registry) Register(l Lister) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := l.Name()
	if _, ok := r.byKey[name]; ok {
		return fmt.Errorf("collection %q already registered", name)
	}
	r.byKey[name] = l
	r.order = append(r.order, name)
	return nil
}

func (r *Registry) Get(name string) (Lister, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byKey[name]
	if !ok {
		return nil, domain.NotFoundError{Resource: "collection " + name}
	}
	return l, nil
}

// All returns the collections in registration order.
func (r *Registry) All() []Lister {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Lister, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byKey[name])
	}
	return out
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Descriptors describes every collection.
func (r *Registry) Descriptors() []Descriptor {
	all := r.All()
	out := make([]Descriptor, len(all))
	for i, l := range all {
		out[i] = l.Describe()
	}
	return out
}

// RefreshAll refreshes every collection and joins the failures.
func (r *Registry) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, l := range r.All() {
		if err := l.Refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
