package listquery

import (
	"slices"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memo caches page results keyed on (collection identity, query).
// Callers bump the identity whenever the underlying collection changes.
type Memo[T any] struct {
	cache *lru.Cache[string, PageResult[T]]
}

// NewMemo returns a memo holding up to size results.
func NewMemo[T any](size int) (*Memo[T], error) {
	cache, err := lru.New[string, PageResult[T]](size)
	if err != nil {
		return nil, err
	}
	return &Memo[T]{cache: cache}, nil
}

// Run returns the cached result for (identity, q) or runs the pipeline.
// A nil Memo always runs the pipeline.
func (m *Memo[T]) Run(identity string, records []T, q Query, s Schema[T]) PageResult[T] {
	if m == nil {
		return Run(records, q, s)
	}
	key := identity + "\x00" + q.Key()
	if res, ok := m.cache.Get(key); ok {
		res.Rows = slices.Clone(res.Rows)
		return res
	}
	res := Run(records, q, s)
	cached := res
	cached.Rows = slices.Clone(res.Rows)
	m.cache.Add(key, cached)
	return res
}

// Purge drops every cached result.
func (m *Memo[T]) Purge() {
	if m != nil {
		m.cache.Purge()
	}
}

// Len reports how many results are cached.
func (m *Memo[T]) Len() int {
	if m == nil {
		return 0
	}
	return m.cache.Len()
}

// Key is a canonical encoding of q: filters are ordered by field id and
// the values of explicit set operators are sorted, so equivalent queries
// share a key. Other operators read their values positionally and keep
// the given order.
func (q Query) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(q.Search))

	filters := NormalizeFilters(q.Filters)
	slices.SortFunc(filters, func(a, c ActiveFilter) int { return strings.Compare(a.FieldID, c.FieldID) })
	for _, f := range filters {
		vals := f.Values
		if f.Operator == OpIn || f.Operator == OpNotIn {
			vals = slices.Sorted(slices.Values(f.Values))
		}
		b.WriteString("|f:")
		b.WriteString(strconv.Quote(f.FieldID))
		b.WriteString(":")
		b.WriteString(string(f.Operator))
		b.WriteString(":")
		b.WriteString(strconv.Quote(f.Text))
		for _, v := range vals {
			b.WriteString(",")
			b.WriteString(strconv.Quote(v))
		}
	}
	if q.Sort != nil {
		b.WriteString("|s:")
		b.WriteString(strconv.Quote(q.Sort.Field))
		b.WriteString(":")
		b.WriteString(q.Sort.Direction.String())
	}
	b.WriteString("|p:")
	b.WriteString(strconv.Itoa(q.PageIndex))
	b.WriteString(":")
	b.WriteString(strconv.Itoa(q.PageSize))
	return b.String()
}
