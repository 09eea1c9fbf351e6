package listquery

import "sync"

// Session owns the Query of one list view and re-runs the pipeline on
// every mutation. Changing the search text or the filters resets the
// page index to 0 so a narrower result never points past its last page.
type Session[T any] struct {
	mu     sync.Mutex
	schema Schema[T]
	source func() []T
	query  Query
}

// NewSession starts a session over the records returned by source.
func NewSession[T any](schema Schema[T], source func() []T) *Session[T] {
	return &Session[T]{
		schema: schema,
		source: source,
		query:  Query{PageSize: schema.PageSize},
	}
}

// Query returns a copy of the current query.
func (s *Session[T]) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query.Clone()
}

// Result runs the pipeline for the current query.
func (s *Session[T]) Result() PageResult[T] {
	s.mu.Lock()
	q := s.query.Clone()
	s.mu.Unlock()
	return Run(s.records(), q, s.schema)
}

func (s *Session[T]) records() []T {
	if s.source == nil {
		return nil
	}
	return s.source()
}

func (s *Session[T]) update(resetPage bool, fn func(q *Query)) PageResult[T] {
	s.mu.Lock()
	fn(&s.query)
	if resetPage {
		s.query.PageIndex = 0
	}
	q := s.query.Clone()
	s.mu.Unlock()
	return Run(s.records(), q, s.schema)
}

// SetSearch replaces the free-text search.
func (s *Session[T]) SetSearch(text string) PageResult[T] {
	return s.update(true, func(q *Query) { q.Search = text })
}

// SetFilters replaces every active filter.
func (s *Session[T]) SetFilters(filters []ActiveFilter) PageResult[T] {
	return s.update(true, func(q *Query) { q.Filters = NormalizeFilters(filters) })
}

// SetFilter adds or replaces the filter on f.FieldID.
func (s *Session[T]) SetFilter(f ActiveFilter) PageResult[T] {
	return s.update(true, func(q *Query) { q.Filters = UpsertFilter(q.Filters, f) })
}

// RemoveFilter drops the filter on fieldID.
func (s *Session[T]) RemoveFilter(fieldID string) PageResult[T] {
	return s.update(true, func(q *Query) { q.Filters = RemoveFilter(q.Filters, fieldID) })
}

// ToggleOption flips one option of a select filter.
func (s *Session[T]) ToggleOption(fieldID, value string) PageResult[T] {
	return s.update(true, func(q *Query) { q.Filters = ToggleOption(q.Filters, fieldID, value) })
}

// ClearFilters drops every filter and the search text.
func (s *Session[T]) ClearFilters() PageResult[T] {
	return s.update(true, func(q *Query) {
		q.Search = ""
		q.Filters = nil
	})
}

// SetSort selects a sort; nil restores source order.
func (s *Session[T]) SetSort(sort *SortState) PageResult[T] {
	return s.update(false, func(q *Query) {
		if sort == nil {
			q.Sort = nil
			return
		}
		st := *sort
		q.Sort = &st
	})
}

// SetPageIndex moves to page n. Out-of-range pages yield an empty slice.
func (s *Session[T]) SetPageIndex(n int) PageResult[T] {
	return s.update(false, func(q *Query) { q.PageIndex = n })
}

// SetPageSize changes the page size and returns to the first page.
func (s *Session[T]) SetPageSize(n int) PageResult[T] {
	return s.update(true, func(q *Query) { q.PageSize = n })
}

// Reset restores the initial query.
func (s *Session[T]) Reset() PageResult[T] {
	return s.update(true, func(q *Query) { *q = Query{PageSize: s.schema.PageSize} })
}
