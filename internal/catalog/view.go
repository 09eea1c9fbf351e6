package catalog

import (
	lq "dashkit/internal/listquery"
)

// View is a stateful list page: one Query plus the mutators that re-run
// the pipeline.
type View interface {
	Query() lq.Query
	Result() lq.PageResult[any]
	SetSearch(text string) lq.PageResult[any]
	SetFilters(filters []lq.ActiveFilter) lq.PageResult[any]
	SetFilter(f lq.ActiveFilter) lq.PageResult[any]
	RemoveFilter(fieldID string) lq.PageResult[any]
	ToggleOption(fieldID, value string) lq.PageResult[any]
	ClearFilters() lq.PageResult[any]
	SetSort(sort *lq.SortState) lq.PageResult[any]
	SetPageIndex(n int) lq.PageResult[any]
	SetPageSize(n int) lq.PageResult[any]
	Reset() lq.PageResult[any]
}

type view[T any] struct {
	s *lq.Session[T]
}

// NewView starts a session over the collection's current records.
func (c *Collection[T]) NewView() View {
	return view[T]{s: lq.NewSession(c.spec.Schema, c.snapshot)}
}

func (v view[T]) Query() lq.Query                  { return v.s.Query() }
func (v view[T]) Result() lq.PageResult[any]       { return v.s.Result().Any() }
func (v view[T]) ClearFilters() lq.PageResult[any] { return v.s.ClearFilters().Any() }
func (v view[T]) Reset() lq.PageResult[any]        { return v.s.Reset().Any() }

func (v view[T]) SetSearch(text string) lq.PageResult[any] {
	return v.s.SetSearch(text).Any()
}

func (v view[T]) SetFilters(filters []lq.ActiveFilter) lq.PageResult[any] {
	return v.s.SetFilters(filters).Any()
}

func (v view[T]) SetFilter(f lq.ActiveFilter) lq.PageResult[any] {
	return v.s.SetFilter(f).Any()
}

func (v view[T]) RemoveFilter(fieldID string) lq.PageResult[any] {
	return v.s.RemoveFilter(fieldID).Any()
}

func (v view[T]) ToggleOption(fieldID, value string) lq.PageResult[any] {
	return v.s.ToggleOption(fieldID, value).Any()
}

func (v view[T]) SetSort(sort *lq.SortState) lq.PageResult[any] {
	return v.s.SetSort(sort).Any()
}

func (v view[T]) SetPageIndex(n int) lq.PageResult[any] {
	return v.s.SetPageIndex(n).Any()
}

func (v view[T]) SetPageSize(n int) lq.PageResult[any] {
	return v.s.SetPageSize(n).Any()
}
