// Package listquery implements the search, filter, sort and paginate
// pipeline shared by every list page of the dashboard.
//
// The pipeline is a pure function of (records, Query): it never mutates
// the source collection and always runs Filter -> Sort -> Paginate.
package listquery

import "slices"

// DefaultPageSize is used when neither the query nor the schema carries a
// positive page size.
const DefaultPageSize = 10

// FilterKind is the input style of a FilterField.
type FilterKind string

const (
	KindText        FilterKind = "text"
	KindSelect      FilterKind = "select"
	KindMultiSelect FilterKind = "multi_select"
)

func (k FilterKind) valid() bool {
	switch k {
	case KindText, KindSelect, KindMultiSelect:
		return true
	}
	return false
}

func (k FilterKind) isSelect() bool {
	return k == KindSelect || k == KindMultiSelect
}

// Operator is the comparison an ActiveFilter applies.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not_equals"
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
	OpStartsWith  Operator = "starts_with"
	OpEndsWith    Operator = "ends_with"
	OpIn          Operator = "in"
	OpNotIn       Operator = "not_in"
	OpGt          Operator = "gt"
	OpGte         Operator = "gte"
	OpLt          Operator = "lt"
	OpLte         Operator = "lte"
	OpBetween     Operator = "between"
	OpIsNull      Operator = "is_null"
	OpIsNotNull   Operator = "is_not_null"
)

var operators = []Operator{
	OpEquals, OpNotEquals, OpContains, OpNotContains, OpStartsWith, OpEndsWith,
	OpIn, OpNotIn, OpGt, OpGte, OpLt, OpLte, OpBetween, OpIsNull, OpIsNotNull,
}

// Valid reports whether o is one of the defined operators.
func (o Operator) Valid() bool { return slices.Contains(operators, o) }

// FilterOption is one selectable value of a select filter.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterField declares a filterable dimension of a record type.
// ID must name a field the schema can read.
type FilterField struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Kind        FilterKind     `json:"type"`
	Operators   []Operator     `json:"operators,omitempty"`
	Options     []FilterOption `json:"options,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// DefaultOperator is "in" for select kinds and "contains" for text.
func (f FilterField) DefaultOperator() Operator {
	if f.Kind.isSelect() {
		return OpIn
	}
	return OpContains
}

// ActiveFilter is an applied filter. Select kinds read Values, text
// operators read Text (falling back to the first of Values).
type ActiveFilter struct {
	FieldID  string   `json:"filterId"`
	Operator Operator `json:"operator,omitempty"`
	Text     string   `json:"text,omitempty"`
	Values   []string `json:"values,omitempty"`
}

func (f ActiveFilter) text() string {
	if f.Text != "" {
		return f.Text
	}
	if len(f.Values) > 0 {
		return f.Values[0]
	}
	return ""
}

func (f ActiveFilter) values() []string {
	if len(f.Values) > 0 {
		return f.Values
	}
	if f.Text != "" {
		return []string{f.Text}
	}
	return nil
}

func (f ActiveFilter) clone() ActiveFilter {
	if f.Values != nil {
		f.Values = append([]string(nil), f.Values...)
	}
	return f
}

// SortKind governs how a SortField compares values.
type SortKind string

const (
	SortText   SortKind = "text"
	SortNumber SortKind = "number"
	SortDate   SortKind = "date"
)

// SortField declares a sortable dimension of a record type.
type SortField struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Kind  SortKind `json:"type,omitempty"`
}

// Direction is +1 for ascending and -1 for descending.
type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

func (d Direction) sign() int {
	if d < 0 {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d < 0 {
		return "desc"
	}
	return "asc"
}

// SortState is the selected sort. A nil *SortState keeps source order.
type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Query is the full search/filter/sort/page state of one list view.
type Query struct {
	Search    string         `json:"search"`
	Filters   []ActiveFilter `json:"filters"`
	Sort      *SortState     `json:"sort"`
	PageIndex int            `json:"pageIndex"`
	PageSize  int            `json:"pageSize"`
}

// Clone returns a deep copy of q.
func (q Query) Clone() Query {
	out := q
	if q.Filters != nil {
		out.Filters = make([]ActiveFilter, len(q.Filters))
		for i, f := range q.Filters {
			out.Filters[i] = f.clone()
		}
	}
	if q.Sort != nil {
		s := *q.Sort
		out.Sort = &s
	}
	return out
}

// PageResult is the displayable slice of a query plus paging metadata.
type PageResult[T any] struct {
	Rows       []T  `json:"rows"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	PageIndex  int  `json:"pageIndex"`
	PageSize   int  `json:"pageSize"`
	CanAdvance bool `json:"canAdvance"`
}

// Any erases the row type, for callers that serve several collections.
func (p PageResult[T]) Any() PageResult[any] {
	rows := make([]any, len(p.Rows))
	for i, r := range p.Rows {
		rows[i] = r
	}
	return PageResult[any]{
		Rows:       rows,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		PageIndex:  p.PageIndex,
		PageSize:   p.PageSize,
		CanAdvance: p.CanAdvance,
	}
}
