package listquery

import (
	"cmp"
	"slices"
	"strings"
)

// Sort returns records ordered by sort. A nil sort, or a sort on a field
// the schema does not declare, returns the input unchanged. The sort is
// stable, so ties keep their relative source order.
func Sort[T any](records []T, sort *SortState, s Schema[T]) []T {
	if sort == nil {
		return records
	}
	field, ok := s.SortField(sort.Field)
	if !ok {
		return records
	}
	get, ok := s.Fields[field.ID]
	if !ok || get == nil {
		return records
	}

	sign := sort.Direction.sign()
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return compareValues(get(a), get(b), field.Kind) * sign
	})
	return out
}

// compareValues compares numerically when both values are numbers, by
// time for date fields whose values both parse, and otherwise as
// case-sensitive strings.
func compareValues(a, b any, kind SortKind) int {
	if x, ok := asNumber(a); ok {
		if y, ok := asNumber(b); ok {
			return cmp.Compare(x, y)
		}
	}
	if kind == SortDate {
		if ta, ok := asTime(a); ok {
			if tb, ok := asTime(b); ok {
				return ta.Compare(tb)
			}
		}
	}
	return strings.Compare(asString(a), asString(b))
}
