package services

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"dashkit/internal/catalog"
	"dashkit/internal/domain"
	lq "dashkit/internal/listquery"
)

// ToggleOption flips one option of a select filter.
type ToggleOption struct {
	FieldID string `json:"fieldId"`
	Value   string `json:"value"`
}

// ViewPatch is one batch of list mutations. Set fields are applied in
// declaration order; a search or filter change returns to page 0 before
// PageIndex is applied.
type ViewPatch struct {
	Search       *string            `json:"search,omitempty"`
	Filters      *[]lq.ActiveFilter `json:"filters,omitempty"`
	SetFilter    *lq.ActiveFilter   `json:"setFilter,omitempty"`
	RemoveFilter *string            `json:"removeFilter,omitempty"`
	Toggle       *ToggleOption      `json:"toggle,omitempty"`
	ClearFilters bool               `json:"clearFilters,omitempty"`
	Sort         *lq.SortState      `json:"sort,omitempty"`
	ClearSort    bool               `json:"clearSort,omitempty"`
	PageSize     *int               `json:"pageSize,omitempty"`
	PageIndex    *int               `json:"pageIndex,omitempty"`
}

// introduced collects the filters and sort a patch would apply.
func (p ViewPatch) introduced() lq.Query {
	var q lq.Query
	if p.Filters != nil {
		q.Filters = append(q.Filters, *p.Filters...)
	}
	if p.SetFilter != nil {
		q.Filters = append(q.Filters, *p.SetFilter)
	}
	if p.Toggle != nil {
		q.Filters = append(q.Filters, lq.ActiveFilter{FieldID: p.Toggle.FieldID, Values: []string{p.Toggle.Value}})
	}
	q.Sort = p.Sort
	return q
}

// ViewState is a view's query and its current page.
type ViewState struct {
	Collection string             `json:"collection"`
	Query      lq.Query           `json:"query"`
	Result     lq.PageResult[any] `json:"result"`
	Filters    int                `json:"activeFilters"`
}

// ViewService keeps one list view per user and collection. The least
// recently used views are evicted.
type ViewService struct {
	registry *catalog.Registry
	views    *lru.Cache[string, catalog.View]
}

func NewViewService(registry *catalog.Registry, size int) (*ViewService, error) {
	views, err := lru.New[string, catalog.View](size)
	if err != nil {
		return nil, fmt.Errorf("view cache: %w", err)
	}
	return &ViewService{registry: registry, views: views}, nil
}

func viewKey(uid domain.ID, name string) string {
	return string(uid) + "\x00" + name
}

func (s *ViewService) view(uid domain.ID, name string) (catalog.Lister, catalog.View, error) {
	l, err := s.registry.Get(name)
	if err != nil {
		return nil, nil, err
	}
	key := viewKey(uid, name)
	if v, ok := s.views.Get(key); ok {
		return l, v, nil
	}
	// Concurrent first requests race here; the view that lands first wins.
	v := l.NewView()
	if prev, ok, _ := s.views.PeekOrAdd(key, v); ok {
		return l, prev, nil
	}
	return l, v, nil
}

func state(name string, v catalog.View, res lq.PageResult[any]) ViewState {
	q := v.Query()
	return ViewState{Collection: name, Query: q, Result: res, Filters: lq.ActiveCount(q.Filters)}
}

// Current returns the view of uid on collection name, creating it.
func (s *ViewService) Current(uid domain.ID, name string) (ViewState, error) {
	_, v, err := s.view(uid, name)
	if err != nil {
		return ViewState{}, err
	}
	return state(name, v, v.Result()), nil
}

// Apply runs p against the view. Undeclared filter or sort fields are
// rejected before anything changes.
func (s *ViewService) Apply(uid domain.ID, name string, p ViewPatch) (ViewState, error) {
	l, v, err := s.view(uid, name)
	if err != nil {
		return ViewState{}, err
	}
	if err := l.Check(p.introduced()); err != nil {
		return ViewState{}, err
	}
	if p.PageSize != nil && *p.PageSize < 0 {
		return ViewState{}, domain.ValidationError{Field: "pageSize", Msg: "must not be negative"}
	}
	if p.PageIndex != nil && *p.PageIndex < 0 {
		return ViewState{}, domain.ValidationError{Field: "pageIndex", Msg: "must not be negative"}
	}

	res := v.Result()
	if p.Search != nil {
		res = v.SetSearch(*p.Search)
	}
	if p.Filters != nil {
		res = v.SetFilters(*p.Filters)
	}
	if p.SetFilter != nil {
		res = v.SetFilter(*p.SetFilter)
	}
	if p.RemoveFilter != nil {
		res = v.RemoveFilter(*p.RemoveFilter)
	}
	if p.Toggle != nil {
		res = v.ToggleOption(p.Toggle.FieldID, p.Toggle.Value)
	}
	if p.ClearFilters {
		res = v.ClearFilters()
	}
	if p.ClearSort {
		res = v.SetSort(nil)
	}
	if p.Sort != nil {
		res = v.SetSort(p.Sort)
	}
	if p.PageSize != nil {
		res = v.SetPageSize(*p.PageSize)
	}
	if p.PageIndex != nil {
		res = v.SetPageIndex(*p.PageIndex)
	}
	return state(name, v, res), nil
}

// Reset restores the view's initial query.
func (s *ViewService) Reset(uid domain.ID, name string) (ViewState, error) {
	_, v, err := s.view(uid, name)
	if err != nil {
		return ViewState{}, err
	}
	return state(name, v, v.Reset()), nil
}

// Len reports how many views are held.
func (s *ViewService) Len() int { return s.views.Len() }
