package listquery

import "slices"

// NormalizeFilters keeps at most one filter per field id. A later filter
// for the same id replaces the earlier one in place.
func NormalizeFilters(filters []ActiveFilter) []ActiveFilter {
	out := make([]ActiveFilter, 0, len(filters))
	index := make(map[string]int, len(filters))
	for _, f := range filters {
		if i, ok := index[f.FieldID]; ok {
			out[i] = f.clone()
			continue
		}
		index[f.FieldID] = len(out)
		out = append(out, f.clone())
	}
	return out
}

// UpsertFilter returns filters with f set, replacing any filter on the
// same field.
func UpsertFilter(filters []ActiveFilter, f ActiveFilter) []ActiveFilter {
	return NormalizeFilters(append(slices.Clone(filters), f))
}

// RemoveFilter returns filters without the filter on fieldID.
func RemoveFilter(filters []ActiveFilter, fieldID string) []ActiveFilter {
	out := make([]ActiveFilter, 0, len(filters))
	for _, f := range filters {
		if f.FieldID != fieldID {
			out = append(out, f.clone())
		}
	}
	return out
}

// ToggleOption adds value to the selection of the filter on fieldID, or
// removes it when already selected. A filter left with no selected value
// is removed.
func ToggleOption(filters []ActiveFilter, fieldID, value string) []ActiveFilter {
	out := NormalizeFilters(filters)
	for i, f := range out {
		if f.FieldID != fieldID {
			continue
		}
		if j := slices.Index(f.Values, value); j >= 0 {
			f.Values = slices.Delete(f.Values, j, j+1)
		} else {
			f.Values = append(f.Values, value)
		}
		if len(f.Values) == 0 && f.Text == "" {
			return slices.Delete(out, i, i+1)
		}
		out[i] = f
		return out
	}
	return append(out, ActiveFilter{FieldID: fieldID, Operator: OpIn, Values: []string{value}})
}

// ActiveCount counts filters that currently constrain the result.
func ActiveCount(filters []ActiveFilter) int {
	n := 0
	for _, f := range filters {
		switch {
		case f.Operator == OpIsNull || f.Operator == OpIsNotNull:
			n++
		case len(f.Values) > 0 || f.Text != "":
			n++
		}
	}
	return n
}
