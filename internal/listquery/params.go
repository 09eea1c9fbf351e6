package listquery

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// ParseValues builds a Query from URL query parameters:
//
//	search=<text>                 free-text search (alias q)
//	filter[<id>]=<value>          repeat for several selected values
//	op[<id>]=<operator>           operator for the filter on <id>
//	sort=<id> dir=asc|desc        sort; "-<id>" also means descending
//	page=<n> size=<n>             zero-based page index and page size
func ParseValues(v url.Values) (Query, error) {
	q := Query{Search: v.Get("search")}
	if q.Search == "" {
		q.Search = v.Get("q")
	}

	ops := map[string]Operator{}
	var order []string
	byID := map[string][]string{}
	for key, vals := range v {
		if id, ok := bracketKey(key, "op"); ok && len(vals) > 0 {
			ops[id] = Operator(strings.TrimSpace(vals[0]))
			continue
		}
		if id, ok := bracketKey(key, "filter"); ok {
			if _, seen := byID[id]; !seen {
				order = append(order, id)
			}
			for _, val := range vals {
				if val != "" {
					byID[id] = append(byID[id], val)
				}
			}
			if byID[id] == nil {
				byID[id] = []string{}
			}
		}
	}
	for id := range ops {
		if _, seen := byID[id]; !seen {
			order = append(order, id)
			byID[id] = []string{}
		}
	}
	slices.Sort(order)
	for _, id := range order {
		f := ActiveFilter{FieldID: id, Operator: ops[id], Values: byID[id]}
		if len(f.Values) == 1 {
			f.Text = f.Values[0]
		}
		q.Filters = append(q.Filters, f)
	}

	if field := strings.TrimSpace(v.Get("sort")); field != "" {
		dir := Asc
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			dir = Desc
		}
		switch strings.ToLower(strings.TrimSpace(v.Get("dir"))) {
		case "", "asc", "1":
		case "desc", "-1":
			dir = Desc
		default:
			return Query{}, fmt.Errorf("dir: want asc or desc, got %q", v.Get("dir"))
		}
		q.Sort = &SortState{Field: field, Direction: dir}
	}

	var err error
	if q.PageIndex, err = intParam(v, "page"); err != nil {
		return Query{}, err
	}
	if q.PageSize, err = intParam(v, "size"); err != nil {
		return Query{}, err
	}
	if q.PageSize < 0 {
		return Query{}, fmt.Errorf("size: must not be negative")
	}
	return q, nil
}

func bracketKey(key, prefix string) (string, bool) {
	if !strings.HasPrefix(key, prefix+"[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	id := key[len(prefix)+1 : len(key)-1]
	return id, id != ""
}

func intParam(v url.Values, name string) (int, error) {
	raw := strings.TrimSpace(v.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, raw)
	}
	return n, nil
}

// Values encodes q back into URL query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for _, f := range q.Filters {
		key := "filter[" + f.FieldID + "]"
		for _, val := range f.values() {
			v.Add(key, val)
		}
		if f.Operator != "" {
			v.Set("op["+f.FieldID+"]", string(f.Operator))
		}
	}
	if q.Sort != nil {
		v.Set("sort", q.Sort.Field)
		v.Set("dir", q.Sort.Direction.String())
	}
	if q.PageIndex != 0 {
		v.Set("page", strconv.Itoa(q.PageIndex))
	}
	if q.PageSize != 0 {
		v.Set("size", strconv.Itoa(q.PageSize))
	}
	return v
}
