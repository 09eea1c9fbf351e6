package listquery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLowStockScenario(t *testing.T) {
	q := Query{Filters: []ActiveFilter{{FieldID: "status", Values: []string{"Low Stock"}}}}

	res := Run(items, q, itemSchema)

	assert.Equal(t, []string{"USB-C Hub 7-Port", "Desk Lamp LED", "Blue Light Glasses"}, names(res.Rows))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 8, res.PageSize)
	assert.False(t, res.CanAdvance)
}

func TestRunDuplicateFiltersLastWriteWins(t *testing.T) {
	q := Query{Filters: []ActiveFilter{
		{FieldID: "status", Values: []string{"Active"}},
		{FieldID: "status", Values: []string{"Low Stock"}},
	}}

	res := Run(items, q, itemSchema)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"USB-C Hub 7-Port", "Desk Lamp LED", "Blue Light Glasses"}, names(res.Rows))
	assert.Len(t, q.Filters, 2)
}

func TestRunOrdersSortedByTotal(t *testing.T) {
	q := Query{Sort: &SortState{Field: "total", Direction: Asc}}

	res := Run(orders, q, orderSchema)

	require.Len(t, res.Rows, 7)
	assert.Equal(t, "ORD-1043", res.Rows[0].ID)
	for _, o := range orders {
		assert.LessOrEqual(t, res.Rows[0].Total, o.Total)
	}
	assert.Equal(t, 2, res.TotalPages)
	assert.True(t, res.CanAdvance)
}

func TestRunNoMatchSearch(t *testing.T) {
	for _, res := range []PageResult[any]{
		Run(items, Query{Search: "zzz-nomatch"}, itemSchema).Any(),
		Run(orders, Query{Search: "zzz-nomatch"}, orderSchema).Any(),
	} {
		assert.Empty(t, res.Rows)
		assert.NotNil(t, res.Rows)
		assert.Equal(t, 0, res.Total)
		assert.Equal(t, 1, res.TotalPages)
		assert.False(t, res.CanAdvance)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	q := Query{
		Search:  "e",
		Filters: []ActiveFilter{{FieldID: "category", Values: []string{"Electronics", "Accessories"}}},
		Sort:    &SortState{Field: "price", Direction: Desc},
	}
	first := Run(items, q, itemSchema)
	second := Run(items, q, itemSchema)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ (-first +second):\n%s", diff)
	}
}

func TestRunDoesNotMutateSource(t *testing.T) {
	before := append([]item(nil), items...)
	Run(items, Query{Sort: &SortState{Field: "price", Direction: Desc}}, itemSchema)
	assert.Equal(t, before, items)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(items, "wireless", nil, itemSchema)
	require.Len(t, got, 1)
	assert.Equal(t, "Wireless Keyboard Pro", got[0].Name)

	got = Filter(items, "usb-", nil, itemSchema)
	assert.Equal(t, []string{"USB-C Hub 7-Port"}, names(got))
}

func TestSearchCoversDeclaredFieldsOnly(t *testing.T) {
	// "Furniture" is a category, not a name or SKU.
	assert.Empty(t, Filter(items, "furniture", nil, itemSchema))
	assert.Len(t, Filter(items, "ssd-031", nil, itemSchema), 1)
}

func TestEmptySelectionImposesNoConstraint(t *testing.T) {
	got := Filter(items, "", []ActiveFilter{{FieldID: "status", Values: []string{}}}, itemSchema)
	assert.Len(t, got, len(items))
}

func TestUnknownFilterMatchesNothing(t *testing.T) {
	got := Filter(items, "", []ActiveFilter{{FieldID: "colour", Values: []string{"red"}}}, itemSchema)
	assert.Empty(t, got)
}

func TestFilterMonotonicity(t *testing.T) {
	base := []ActiveFilter{{FieldID: "status", Values: []string{"Active", "Low Stock"}}}
	narrower := append(base, ActiveFilter{FieldID: "category", Values: []string{"Electronics"}})

	n1 := len(Filter(items, "", base, itemSchema))
	n2 := len(Filter(items, "", narrower, itemSchema))

	assert.Equal(t, 10, n1)
	assert.Equal(t, 3, n2)
	assert.LessOrEqual(t, n2, n1)
}

func TestFilterOperators(t *testing.T) {
	cases := []struct {
		name   string
		filter ActiveFilter
		want   int
	}{
		{"text contains ignores case", ActiveFilter{FieldID: "name", Text: "PRO"}, 2},
		{"starts with", ActiveFilter{FieldID: "name", Operator: OpStartsWith, Text: "desk"}, 1},
		{"ends with", ActiveFilter{FieldID: "name", Operator: OpEndsWith, Text: "stand"}, 1},
		{"not contains", ActiveFilter{FieldID: "name", Operator: OpNotContains, Text: "pro"}, 10},
		{"equals number", ActiveFilter{FieldID: "price", Operator: OpEquals, Text: "45"}, 1},
		{"greater than", ActiveFilter{FieldID: "price", Operator: OpGt, Text: "50"}, 6},
		{"less or equal", ActiveFilter{FieldID: "price", Operator: OpLte, Text: "29"}, 3},
		{"between inclusive", ActiveFilter{FieldID: "price", Operator: OpBetween, Values: []string{"40", "60"}}, 4},
		{"not in", ActiveFilter{FieldID: "status", Operator: OpNotIn, Values: []string{"Active"}}, 5},
		{"is null", ActiveFilter{FieldID: "name", Operator: OpIsNull}, 0},
		{"is not null", ActiveFilter{FieldID: "name", Operator: OpIsNotNull}, 12},
		{"unknown operator", ActiveFilter{FieldID: "name", Operator: "resembles", Text: "x"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(items, "", []ActiveFilter{tc.filter}, itemSchema)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestSortIsStable(t *testing.T) {
	asc := Sort(items, &SortState{Field: "category", Direction: Asc}, itemSchema)
	assert.Equal(t, []string{
		"Monitor Stand Deluxe", "Cable Management Kit", "Blue Light Glasses", "Headphone Stand",
		"Laptop Backpack 17\"",
		"Wireless Keyboard Pro", "USB-C Hub 7-Port", "Mechanical Mouse", "Webcam 4K Pro",
		"Desk Lamp LED", "Ergonomic Chair Pad",
		"Portable SSD 2TB",
	}, names(asc))

	desc := Sort(items, &SortState{Field: "category", Direction: Desc}, itemSchema)
	assert.Equal(t, []string{
		"Portable SSD 2TB",
		"Desk Lamp LED", "Ergonomic Chair Pad",
		"Wireless Keyboard Pro", "USB-C Hub 7-Port", "Mechanical Mouse", "Webcam 4K Pro",
		"Laptop Backpack 17\"",
		"Monitor Stand Deluxe", "Cable Management Kit", "Blue Light Glasses", "Headphone Stand",
	}, names(desc))
}

func TestSortNilOrUnknownKeepsSourceOrder(t *testing.T) {
	assert.Equal(t, names(items), names(Sort(items, nil, itemSchema)))
	assert.Equal(t, names(items), names(Sort(items, &SortState{Field: "weight", Direction: Asc}, itemSchema)))
}

func TestSortNumbersNumerically(t *testing.T) {
	got := Sort(items, &SortState{Field: "stock", Direction: Desc}, itemSchema)
	assert.Equal(t, 320, got[0].Stock)
	// 0-stock ties keep source order at the tail.
	assert.Equal(t, "Monitor Stand Deluxe", got[10].Name)
	assert.Equal(t, "Webcam 4K Pro", got[11].Name)
}

func TestSortTextIsCaseSensitive(t *testing.T) {
	type rec struct{ Name string }
	s := Schema[rec]{
		Fields: map[string]Accessor[rec]{"name": func(r rec) any { return r.Name }},
		Sorts:  []SortField{{ID: "name", Kind: SortText}},
	}
	got := Sort([]rec{{"apple"}, {"Banana"}, {"cherry"}}, &SortState{Field: "name", Direction: Asc}, s)
	assert.Equal(t, []rec{{"Banana"}, {"apple"}, {"cherry"}}, got)
}

func TestSortDatesChronologically(t *testing.T) {
	type rec struct{ Due string }
	s := Schema[rec]{
		Fields: map[string]Accessor[rec]{"due": func(r rec) any { return r.Due }},
		Sorts: []SortField{
			{ID: "due", Kind: SortDate},
		},
	}
	in := []rec{{"Mar 1, 2026"}, {"Jan 5, 2026"}, {"Feb 1, 2026"}}
	got := Sort(in, &SortState{Field: "due", Direction: Asc}, s)
	assert.Equal(t, []rec{{"Jan 5, 2026"}, {"Feb 1, 2026"}, {"Mar 1, 2026"}}, got)
}

func TestPaginationCoverage(t *testing.T) {
	q := Query{Sort: &SortState{Field: "price", Direction: Asc}, PageSize: 5}
	ordered := Ordered(items, q, itemSchema)

	first := Run(items, q, itemSchema)
	require.Equal(t, 3, first.TotalPages)

	var all []item
	for p := 0; p < first.TotalPages; p++ {
		q.PageIndex = p
		page := Run(items, q, itemSchema)
		assert.Equal(t, p < 2, page.CanAdvance)
		all = append(all, page.Rows...)
	}
	if diff := cmp.Diff(ordered, all); diff != "" {
		t.Fatalf("pages do not reproduce the ordered set (-want +got):\n%s", diff)
	}
}

func TestPaginateBounds(t *testing.T) {
	empty := Paginate([]item{}, 0, 8)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Rows)
	assert.False(t, empty.CanAdvance)

	past := Paginate(items, 5, 8)
	assert.Empty(t, past.Rows)
	assert.Equal(t, 2, past.TotalPages)

	negative := Paginate(items, -1, 8)
	assert.Empty(t, negative.Rows)

	last := Paginate(items, 1, 8)
	assert.Len(t, last.Rows, 4)
	assert.False(t, last.CanAdvance)

	defaulted := Paginate(items, 0, 0)
	assert.Equal(t, DefaultPageSize, defaulted.PageSize)
	assert.Len(t, defaulted.Rows, DefaultPageSize)
}

func TestPageSizeFallsBackToSchema(t *testing.T) {
	res := Run(items, Query{}, itemSchema)
	assert.Equal(t, 8, res.PageSize)
	res = Run(items, Query{PageSize: 3}, itemSchema)
	assert.Equal(t, 3, res.PageSize)
	assert.Equal(t, 4, res.TotalPages)
}
