package listquery

// Ordered runs the filter and sort stages and returns the whole ordered
// result, for exports and other consumers that need every page.
// Duplicate filters on one field collapse to the last one.
func Ordered[T any](records []T, q Query, s Schema[T]) []T {
	filtered := Filter(records, q.Search, NormalizeFilters(q.Filters), s)
	return Sort(filtered, q.Sort, s)
}

// Run is the full pipeline: Filter -> Sort -> Paginate.
func Run[T any](records []T, q Query, s Schema[T]) PageResult[T] {
	return Paginate(Ordered(records, q, s), q.PageIndex, s.pageSize(q))
}
