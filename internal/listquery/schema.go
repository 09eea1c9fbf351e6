package listquery

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownField reports a filter, sort or search field id the schema
// cannot read.
var ErrUnknownField = errors.New("unknown field")

// ErrUnknownOperator reports a filter operator that is not defined or
// not offered by the filter it is applied to.
var ErrUnknownOperator = errors.New("unknown operator")

// Accessor reads one named field of a record.
type Accessor[T any] func(T) any

// Schema is the per-page configuration of the pipeline: how to read
// fields of T, which fields free-text search covers, and which filters
// and sorts the page offers.
type Schema[T any] struct {
	Fields       map[string]Accessor[T]
	SearchFields []string
	Filters      []FilterField
	Sorts        []SortField
	PageSize     int
}

// Validate checks that every declared id resolves to an accessor.
func (s Schema[T]) Validate() error {
	var errs []error
	for _, id := range s.SearchFields {
		if _, ok := s.Fields[id]; !ok {
			errs = append(errs, fmt.Errorf("search field %q: %w", id, ErrUnknownField))
		}
	}
	seen := make(map[string]bool, len(s.Filters))
	for _, f := range s.Filters {
		if _, ok := s.Fields[f.ID]; !ok {
			errs = append(errs, fmt.Errorf("filter %q: %w", f.ID, ErrUnknownField))
		}
		if !f.Kind.valid() {
			errs = append(errs, fmt.Errorf("filter %q: invalid kind %q", f.ID, f.Kind))
		}
		if seen[f.ID] {
			errs = append(errs, fmt.Errorf("filter %q declared twice", f.ID))
		}
		seen[f.ID] = true
	}
	for _, sf := range s.Sorts {
		if _, ok := s.Fields[sf.ID]; !ok {
			errs = append(errs, fmt.Errorf("sort %q: %w", sf.ID, ErrUnknownField))
		}
	}
	if s.PageSize < 0 {
		errs = append(errs, fmt.Errorf("negative page size %d", s.PageSize))
	}
	return errors.Join(errs...)
}

// CheckQuery reports filters, operators or a sort in q that the schema
// does not declare. The pipeline tolerates them; callers at the edge use
// this to reject bad input early.
func (s Schema[T]) CheckQuery(q Query) error {
	var errs []error
	for _, f := range q.Filters {
		field, ok := s.FilterField(f.FieldID)
		if !ok {
			errs = append(errs, fmt.Errorf("filter %q: %w", f.FieldID, ErrUnknownField))
			continue
		}
		if f.Operator == "" {
			continue
		}
		if !f.Operator.Valid() || (len(field.Operators) > 0 && !slices.Contains(field.Operators, f.Operator)) {
			errs = append(errs, fmt.Errorf("filter %q operator %q: %w", f.FieldID, f.Operator, ErrUnknownOperator))
		}
	}
	if q.Sort != nil {
		if _, ok := s.SortField(q.Sort.Field); !ok {
			errs = append(errs, fmt.Errorf("sort %q: %w", q.Sort.Field, ErrUnknownField))
		}
	}
	return errors.Join(errs...)
}

// FilterField looks up a declared filter by id.
func (s Schema[T]) FilterField(id string) (FilterField, bool) {
	for _, f := range s.Filters {
		if f.ID == id {
			return f, true
		}
	}
	return FilterField{}, false
}

// SortField looks up a declared sort by id.
func (s Schema[T]) SortField(id string) (SortField, bool) {
	for _, f := range s.Sorts {
		if f.ID == id {
			return f, true
		}
	}
	return SortField{}, false
}

// Value reads field id of rec.
func (s Schema[T]) Value(rec T, id string) (any, bool) {
	get, ok := s.Fields[id]
	if !ok || get == nil {
		return nil, false
	}
	return get(rec), true
}

func (s Schema[T]) pageSize(q Query) int {
	if q.PageSize > 0 {
		return q.PageSize
	}
	if s.PageSize > 0 {
		return s.PageSize
	}
	return DefaultPageSize
}
