package listquery

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFiltersLastWriteWins(t *testing.T) {
	in := []ActiveFilter{
		{FieldID: "status", Values: []string{"Active"}},
		{FieldID: "category", Values: []string{"Bags"}},
		{FieldID: "status", Values: []string{"Low Stock"}},
	}
	got := NormalizeFilters(in)
	want := []ActiveFilter{
		{FieldID: "status", Values: []string{"Low Stock"}},
		{FieldID: "category", Values: []string{"Bags"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NormalizeFilters (-want +got):\n%s", diff)
	}

	got[0].Values[0] = "changed"
	assert.Equal(t, "Low Stock", in[2].Values[0])
}

func TestToggleOption(t *testing.T) {
	f := ToggleOption(nil, "status", "Active")
	require.Len(t, f, 1)
	assert.Equal(t, []string{"Active"}, f[0].Values)
	assert.Equal(t, OpIn, f[0].Operator)

	f = ToggleOption(f, "status", "Low Stock")
	assert.Equal(t, []string{"Active", "Low Stock"}, f[0].Values)

	f = ToggleOption(f, "status", "Active")
	assert.Equal(t, []string{"Low Stock"}, f[0].Values)

	f = ToggleOption(f, "status", "Low Stock")
	assert.Empty(t, f)
}

func TestUpsertAndRemoveFilter(t *testing.T) {
	f := UpsertFilter(nil, ActiveFilter{FieldID: "name", Text: "desk"})
	f = UpsertFilter(f, ActiveFilter{FieldID: "status", Values: []string{"Active"}})
	f = UpsertFilter(f, ActiveFilter{FieldID: "name", Text: "lamp"})
	require.Len(t, f, 2)
	assert.Equal(t, "lamp", f[0].Text)
	assert.Equal(t, 2, ActiveCount(f))

	f = RemoveFilter(f, "name")
	require.Len(t, f, 1)
	assert.Equal(t, "status", f[0].FieldID)
}

func TestActiveCountIgnoresEmptyFilters(t *testing.T) {
	n := ActiveCount([]ActiveFilter{
		{FieldID: "status"},
		{FieldID: "name", Text: "x"},
		{FieldID: "price", Operator: OpIsNull},
	})
	assert.Equal(t, 2, n)
}

func TestSessionResetsPageOnNarrowing(t *testing.T) {
	s := NewSession(itemSchema, func() []item { return items })

	res := s.SetPageIndex(1)
	assert.Equal(t, 1, res.PageIndex)
	assert.Len(t, res.Rows, 4)

	res = s.SetSort(&SortState{Field: "price", Direction: Asc})
	assert.Equal(t, 1, res.PageIndex, "sorting keeps the page")

	res = s.SetSearch("pro")
	assert.Equal(t, 0, res.PageIndex)
	assert.Equal(t, []string{"Wireless Keyboard Pro", "Webcam 4K Pro"}, names(res.Rows))

	s.SetPageIndex(3)
	res = s.ToggleOption("status", "Active")
	assert.Equal(t, 0, res.PageIndex)
	assert.Equal(t, []string{"Wireless Keyboard Pro"}, names(res.Rows))

	res = s.ClearFilters()
	assert.Equal(t, 12, res.Total)
	assert.Empty(t, s.Query().Search)

	res = s.Reset()
	assert.Nil(t, s.Query().Sort)
	assert.Equal(t, names(items[:8]), names(res.Rows))
}

func TestSessionQueryIsACopy(t *testing.T) {
	s := NewSession(itemSchema, func() []item { return items })
	s.SetFilter(ActiveFilter{FieldID: "status", Values: []string{"Active"}})

	q := s.Query()
	q.Filters[0].Values[0] = "Out of Stock"

	assert.Equal(t, "Active", s.Query().Filters[0].Values[0])
}

func TestMemoCachesByIdentityAndQuery(t *testing.T) {
	m, err := NewMemo[item](16)
	require.NoError(t, err)

	q := Query{Filters: []ActiveFilter{{FieldID: "status", Values: []string{"Low Stock"}}}}
	first := m.Run("v1", items, q, itemSchema)
	first.Rows[0].Name = "mutated"

	second := m.Run("v1", items, q, itemSchema)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "USB-C Hub 7-Port", second.Rows[0].Name)

	m.Run("v2", items, q, itemSchema)
	assert.Equal(t, 2, m.Len())

	m.Purge()
	assert.Equal(t, 0, m.Len())

	var nilMemo *Memo[item]
	assert.Len(t, nilMemo.Run("v1", items, q, itemSchema).Rows, 3)
}

func TestQueryKeyIsCanonical(t *testing.T) {
	a := Query{Filters: []ActiveFilter{
		{FieldID: "status", Operator: OpIn, Values: []string{"Low Stock", "Active"}},
		{FieldID: "category", Operator: OpIn, Values: []string{"Bags"}},
	}}
	b := Query{Filters: []ActiveFilter{
		{FieldID: "category", Operator: OpIn, Values: []string{"Bags"}},
		{FieldID: "status", Operator: OpIn, Values: []string{"Active", "Low Stock"}},
	}}
	assert.Equal(t, a.Key(), b.Key())

	b.PageIndex = 1
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestQueryKeyKeepsPositionalValueOrder(t *testing.T) {
	lampFirst, err := ParseValues(url.Values{"filter[name]": {"Lamp", "Hub"}})
	require.NoError(t, err)
	hubFirst, err := ParseValues(url.Values{"filter[name]": {"Hub", "Lamp"}})
	require.NoError(t, err)
	assert.NotEqual(t, lampFirst.Key(), hubFirst.Key())

	between := func(lo, hi string) Query {
		return Query{Filters: []ActiveFilter{{FieldID: "price", Operator: OpBetween, Values: []string{lo, hi}}}}
	}
	assert.NotEqual(t, between("10", "50").Key(), between("50", "10").Key())

	m, err := NewMemo[item](16)
	require.NoError(t, err)
	assert.Equal(t, []string{"Desk Lamp LED"}, names(m.Run("v1", items, lampFirst, itemSchema).Rows))
	assert.Equal(t, []string{"USB-C Hub 7-Port"}, names(m.Run("v1", items, hubFirst, itemSchema).Rows))
	assert.Equal(t, 2, m.Len())
}

func TestMemoAgreesWithRunOnDuplicateFilters(t *testing.T) {
	q := Query{Filters: []ActiveFilter{
		{FieldID: "status", Values: []string{"Active"}},
		{FieldID: "status", Values: []string{"Low Stock"}},
	}}
	m, err := NewMemo[item](16)
	require.NoError(t, err)

	cached := m.Run("v1", items, q, itemSchema)
	direct := Run(items, q, itemSchema)
	assert.Equal(t, 3, direct.Total)
	if diff := cmp.Diff(direct, cached); diff != "" {
		t.Fatalf("memo differs from pipeline (-direct +cached):\n%s", diff)
	}
}

func TestParseValues(t *testing.T) {
	v, err := url.ParseQuery("search=hub&filter[status]=Low+Stock&filter[status]=Active&op[status]=in&filter[name]=desk&sort=-price&page=1&size=5")
	require.NoError(t, err)

	q, err := ParseValues(v)
	require.NoError(t, err)

	want := Query{
		Search: "hub",
		Filters: []ActiveFilter{
			{FieldID: "name", Text: "desk", Values: []string{"desk"}},
			{FieldID: "status", Operator: OpIn, Values: []string{"Low Stock", "Active"}},
		},
		Sort:      &SortState{Field: "price", Direction: Desc},
		PageIndex: 1,
		PageSize:  5,
	}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Fatalf("ParseValues (-want +got):\n%s", diff)
	}
}

func TestParseValuesRoundTripsThroughValues(t *testing.T) {
	q := Query{
		Search:   "lamp",
		Filters:  []ActiveFilter{{FieldID: "category", Operator: OpIn, Values: []string{"Furniture", "Bags"}}},
		Sort:     &SortState{Field: "stock", Direction: Desc},
		PageSize: 4,
	}
	back, err := ParseValues(q.Values())
	require.NoError(t, err)
	assert.Equal(t, q.Key(), back.Key())
}

func TestParseValuesErrors(t *testing.T) {
	for _, raw := range []string{
		"page=two",
		"size=-1",
		"size=big",
		"sort=name&dir=sideways",
	} {
		v, err := url.ParseQuery(raw)
		require.NoError(t, err)
		_, err = ParseValues(v)
		assert.Error(t, err, raw)
	}
}

func TestSchemaValidate(t *testing.T) {
	require.NoError(t, itemSchema.Validate())
	require.NoError(t, orderSchema.Validate())

	bad := itemSchema
	bad.SearchFields = []string{"name", "colour"}
	bad.Filters = append([]FilterField{{ID: "status", Kind: "dropdown"}}, itemSchema.Filters...)
	bad.PageSize = -1

	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Contains(t, err.Error(), "invalid kind")
	assert.Contains(t, err.Error(), "declared twice")
	assert.Contains(t, err.Error(), "negative page size")
}

func TestCheckQuery(t *testing.T) {
	assert.NoError(t, itemSchema.CheckQuery(Query{Sort: &SortState{Field: "price"}}))

	err := itemSchema.CheckQuery(Query{
		Filters: []ActiveFilter{{FieldID: "colour"}},
		Sort:    &SortState{Field: "weight"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCheckQueryOperators(t *testing.T) {
	assert.NoError(t, itemSchema.CheckQuery(Query{Filters: []ActiveFilter{
		{FieldID: "status", Values: []string{"Active"}},
		{FieldID: "name", Operator: OpStartsWith, Text: "desk"},
	}}))

	err := itemSchema.CheckQuery(Query{Filters: []ActiveFilter{{FieldID: "status", Operator: "bogus", Values: []string{"Active"}}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperator)
	assert.NotErrorIs(t, err, ErrUnknownField)

	restricted := itemSchema
	restricted.Filters = []FilterField{{ID: "status", Kind: KindMultiSelect, Operators: []Operator{OpIn, OpNotIn}}}
	assert.NoError(t, restricted.CheckQuery(Query{Filters: []ActiveFilter{{FieldID: "status", Operator: OpNotIn, Values: []string{"Active"}}}}))
	assert.ErrorIs(t, restricted.CheckQuery(Query{Filters: []ActiveFilter{{FieldID: "status", Operator: OpContains, Text: "Act"}}}), ErrUnknownOperator)

	assert.False(t, Operator("bogus").Valid())
	assert.True(t, OpBetween.Valid())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "45", FormatValue(45.0))
	assert.Equal(t, "59.99", FormatValue(59.99))
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "true", FormatValue(true))
}
