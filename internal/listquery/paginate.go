package listquery

// Paginate slices records into page pageIndex of size pageSize.
// There is always at least one page; an out-of-range index yields an
// empty slice rather than an error.
func Paginate[T any](records []T, pageIndex, pageSize int) PageResult[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(records)
	totalPages := max(1, (total+pageSize-1)/pageSize)

	res := PageResult[T]{
		Rows:       []T{},
		Total:      total,
		TotalPages: totalPages,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		CanAdvance: pageIndex < totalPages-1,
	}
	if pageIndex < 0 || pageIndex >= totalPages {
		return res
	}
	start := pageIndex * pageSize
	end := min(start+pageSize, total)
	if start < end {
		res.Rows = records[start:end:end]
	}
	return res
}
