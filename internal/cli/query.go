package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"dashkit/internal/catalog"
	lq "dashkit/internal/listquery"
)

type queryOptions struct {
	search  string
	filters []string
	ops     []string
	sort    string
	page    int
	size    int
	all     bool
	asJSON  bool
}

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var qo queryOptions
	cmd := &cobra.Command{
		Use:   "query <collection>",
		Short: "Search, filter, sort and page a collection",
		Example: `  dashkit query items --filter "status=Low Stock"
  dashkit query orders --sort -total --size 5
  dashkit query team --search sarah --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return runQuery(cmd.Context(), a.catalog.Registry, args[0], qo, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&qo.search, "search", "s", "", "free-text search")
	f.StringArrayVarP(&qo.filters, "filter", "f", nil, "filter as field=value, repeatable")
	f.StringArrayVar(&qo.ops, "op", nil, "filter operator as field=operator")
	f.StringVar(&qo.sort, "sort", "", "sort field, prefix with - for descending")
	f.IntVar(&qo.page, "page", 0, "zero-based page index")
	f.IntVar(&qo.size, "size", 0, "page size, 0 keeps the collection default")
	f.BoolVar(&qo.all, "all", false, "print every match instead of one page")
	f.BoolVar(&qo.asJSON, "json", false, "print the page as JSON")
	return cmd
}

// values renders the options in the same query-string form the HTTP API
// accepts so both surfaces share one parser.
func (o queryOptions) values() (url.Values, error) {
	v := url.Values{}
	if o.search != "" {
		v.Set("search", o.search)
	}
	for _, f := range o.filters {
		id, val, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("filter %q: want field=value", f)
		}
		v.Add("filter["+strings.TrimSpace(id)+"]", val)
	}
	for _, op := range o.ops {
		id, val, ok := strings.Cut(op, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("op %q: want field=operator", op)
		}
		v.Set("op["+strings.TrimSpace(id)+"]", val)
	}
	if o.sort != "" {
		v.Set("sort", o.sort)
	}
	if o.page != 0 {
		v.Set("page", strconv.Itoa(o.page))
	}
	if o.size != 0 {
		v.Set("size", strconv.Itoa(o.size))
	}
	return v, nil
}

func runQuery(ctx context.Context, reg *catalog.Registry, name string, o queryOptions, out io.Writer) error {
	l, err := reg.Get(name)
	if err != nil {
		return err
	}
	v, err := o.values()
	if err != nil {
		return err
	}
	q, err := lq.ParseValues(v)
	if err != nil {
		return err
	}
	res, err := l.List(ctx, q)
	if err != nil {
		return err
	}
	if o.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	tbl, err := l.Table(ctx, q)
	if err != nil {
		return err
	}
	rows := tbl.Rows
	if !o.all {
		start := min(res.PageIndex*res.PageSize, len(rows))
		rows = rows[start:min(start+res.PageSize, len(rows))]
	}
	headers := make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		headers[i] = c.Label
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
	if o.all {
		fmt.Fprintf(out, "%d records\n", res.Total)
		return nil
	}
	fmt.Fprintf(out, "page %d of %d, %d records\n", res.PageIndex+1, res.TotalPages, res.Total)
	return nil
}
