package listquery

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Filter returns the records matching the free-text search and every
// active filter, in source order. Search is a case-insensitive substring
// match over the schema's search fields; an empty search passes all.
// A filter whose id the schema does not declare matches nothing.
func Filter[T any](records []T, search string, filters []ActiveFilter, s Schema[T]) []T {
	needle := strings.ToLower(search)
	preds := make([]func(T) bool, 0, len(filters))
	for _, f := range filters {
		if p := s.predicate(f); p != nil {
			preds = append(preds, p)
		}
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if needle != "" && !s.matchSearch(rec, needle) {
			continue
		}
		if !all(preds, rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func all[T any](preds []func(T) bool, rec T) bool {
	for _, p := range preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

func (s Schema[T]) matchSearch(rec T, needle string) bool {
	for _, id := range s.SearchFields {
		v, ok := s.Value(rec, id)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(asString(v)), needle) {
			return true
		}
	}
	return false
}

func matchNothing[T any](T) bool { return false }

// predicate builds the test for one active filter. A nil predicate means
// the filter imposes no constraint (for example an empty selection).
func (s Schema[T]) predicate(f ActiveFilter) func(T) bool {
	field, ok := s.FilterField(f.FieldID)
	if !ok {
		return matchNothing[T]
	}
	get, ok := s.Fields[field.ID]
	if !ok || get == nil {
		return matchNothing[T]
	}

	op := f.Operator
	if op == "" {
		op = field.DefaultOperator()
	}

	switch op {
	case OpIn, OpNotIn:
		set := f.values()
		if len(set) == 0 {
			return nil
		}
		want := op == OpIn
		return func(rec T) bool {
			return slices.Contains(set, asString(get(rec))) == want
		}

	case OpContains, OpNotContains, OpStartsWith, OpEndsWith, OpEquals, OpNotEquals:
		text := f.text()
		if text == "" {
			return nil
		}
		lower := strings.ToLower(text)
		return func(rec T) bool {
			return matchText(op, get(rec), text, lower)
		}

	case OpGt, OpGte, OpLt, OpLte:
		text := f.text()
		if text == "" {
			return nil
		}
		return func(rec T) bool {
			c := compareTo(get(rec), text)
			switch op {
			case OpGt:
				return c > 0
			case OpGte:
				return c >= 0
			case OpLt:
				return c < 0
			default:
				return c <= 0
			}
		}

	case OpBetween:
		if len(f.Values) < 2 || f.Values[0] == "" || f.Values[1] == "" {
			return nil
		}
		lo, hi := f.Values[0], f.Values[1]
		return func(rec T) bool {
			v := get(rec)
			return compareTo(v, lo) >= 0 && compareTo(v, hi) <= 0
		}

	case OpIsNull:
		return func(rec T) bool { return isNull(get(rec)) }

	case OpIsNotNull:
		return func(rec T) bool { return !isNull(get(rec)) }
	}
	return matchNothing[T]
}

func matchText(op Operator, v any, text, lower string) bool {
	if op == OpEquals || op == OpNotEquals {
		eq := false
		if n, ok := asNumber(v); ok {
			if want, err := strconv.ParseFloat(text, 64); err == nil {
				eq = n == want
			} else {
				eq = strings.EqualFold(asString(v), text)
			}
		} else {
			eq = strings.EqualFold(asString(v), text)
		}
		return eq == (op == OpEquals)
	}

	s := strings.ToLower(asString(v))
	switch op {
	case OpContains:
		return strings.Contains(s, lower)
	case OpNotContains:
		return !strings.Contains(s, lower)
	case OpStartsWith:
		return strings.HasPrefix(s, lower)
	default:
		return strings.HasSuffix(s, lower)
	}
}

// compareTo orders a field value against a filter operand: numerically
// when both are numbers, chronologically when both are dates, otherwise
// as strings.
func compareTo(v any, operand string) int {
	if n, ok := asNumber(v); ok {
		if want, err := strconv.ParseFloat(operand, 64); err == nil {
			return cmp.Compare(n, want)
		}
	}
	if t, ok := asTime(v); ok {
		if want, ok := asTime(operand); ok {
			return t.Compare(want)
		}
	}
	return strings.Compare(asString(v), operand)
}
