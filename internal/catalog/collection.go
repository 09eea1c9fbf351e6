// Package catalog binds the dashboard's record collections to the list
// pipeline: each collection pairs a source of records with the page's
// schema, export columns and stat cards.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"dashkit/internal/domain"
	"dashkit/internal/domain/models"
	lq "dashkit/internal/listquery"
	"dashkit/internal/repositories"
)

// Column is one exported column.
type Column struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Width float64 `json:"-"`
}

// Spec is the static configuration of one collection.
type Spec[T any] struct {
	Name    string
	Title   string
	Schema  lq.Schema[T]
	Key     func(T) string
	Columns []Column
	Stats   func([]T) []models.StatCard
}

// Descriptor is what clients need to render a list page.
type Descriptor struct {
	Name         string           `json:"name"`
	Title        string           `json:"title"`
	SearchFields []string         `json:"searchFields"`
	Filters      []lq.FilterField `json:"filters"`
	Sorts        []lq.SortField   `json:"sorts"`
	PageSize     int              `json:"pageSize"`
	Columns      []Column         `json:"columns"`
}

// Table is a fully rendered result set for export.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// Lister is the type-erased view of a Collection used by services and
// handlers that serve every collection the same way.
type Lister interface {
	Name() string
	Describe() Descriptor
	Check(q lq.Query) error
	List(ctx context.Context, q lq.Query) (lq.PageResult[any], error)
	Get(ctx context.Context, id string) (any, error)
	Stats(ctx context.Context) ([]models.StatCard, error)
	Table(ctx context.Context, q lq.Query) (Table, error)
	NewView() View
	Refresh(ctx context.Context) error
	Version() uint64
}

// Collection serves one record type through the list pipeline.
type Collection[T any] struct {
	spec   Spec[T]
	source repositories.Source[T]
	memo   *lq.Memo[T]
}

// NewCollection validates spec and binds it to source. memoSize <= 0
// disables result caching.
func NewCollection[T any](spec Spec[T], source repositories.Source[T], memoSize int) (*Collection[T], error) {
	if spec.Name == "" {
		return nil, errors.New("collection name is required")
	}
	if spec.Key == nil {
		return nil, fmt.Errorf("collection %s: key func is required", spec.Name)
	}
	if err := spec.Schema.Validate(); err != nil {
		return nil, fmt.Errorf("collection %s: %w", spec.Name, err)
	}
	for _, col := range spec.Columns {
		if _, ok := spec.Schema.Fields[col.ID]; !ok {
			return nil, fmt.Errorf("collection %s: column %q: %w", spec.Name, col.ID, lq.ErrUnknownField)
		}
	}
	c := &Collection[T]{spec: spec, source: source}
	if memoSize > 0 {
		memo, err := lq.NewMemo[T](memoSize)
		if err != nil {
			return nil, err
		}
		c.memo = memo
	}
	return c, nil
}

func (c *Collection[T]) Name() string { return c.spec.Name }

func (c *Collection[T]) Schema() lq.Schema[T] { return c.spec.Schema }

func (c *Collection[T]) Describe() Descriptor {
	s := c.spec.Schema
	return Descriptor{
		Name:         c.spec.Name,
		Title:        c.spec.Title,
		SearchFields: s.SearchFields,
		Filters:      s.Filters,
		Sorts:        s.Sorts,
		PageSize:     s.PageSize,
		Columns:      c.spec.Columns,
	}
}

// Check rejects filters and sorts the page does not declare.
func (c *Collection[T]) Check(q lq.Query) error {
	if err := c.spec.Schema.CheckQuery(q); err != nil {
		return domain.ValidationError{Field: "query", Msg: err.Error(), Err: err}
	}
	return nil
}

// Records returns every record of the collection.
func (c *Collection[T]) Records(ctx context.Context) ([]T, error) {
	records, err := c.source.All(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "load " + c.spec.Name, Err: err}
	}
	return records, nil
}

func (c *Collection[T]) identity() string {
	return c.spec.Name + "@" + strconv.FormatUint(c.source.Version(), 10)
}

// Page runs the pipeline and keeps the record type.
func (c *Collection[T]) Page(ctx context.Context, q lq.Query) (lq.PageResult[T], error) {
	if err := c.Check(q); err != nil {
		return lq.PageResult[T]{}, err
	}
	identity := c.identity()
	records, err := c.Records(ctx)
	if err != nil {
		return lq.PageResult[T]{}, err
	}
	return c.memo.Run(identity, records, q, c.spec.Schema), nil
}

func (c *Collection[T]) List(ctx context.Context, q lq.Query) (lq.PageResult[any], error) {
	res, err := c.Page(ctx, q)
	if err != nil {
		return lq.PageResult[any]{}, err
	}
	return res.Any(), nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (any, error) {
	records, err := c.Records(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if c.spec.Key(r) == id {
			return r, nil
		}
	}
	return nil, domain.NotFoundError{Resource: c.spec.Name + " " + id}
}

func (c *Collection[T]) Stats(ctx context.Context) ([]models.StatCard, error) {
	if c.spec.Stats == nil {
		return []models.StatCard{}, nil
	}
	records, err := c.Records(ctx)
	if err != nil {
		return nil, err
	}
	return c.spec.Stats(records), nil
}

// Table renders every page of q (filtered and sorted) as strings.
func (c *Collection[T]) Table(ctx context.Context, q lq.Query) (Table, error) {
	if err := c.Check(q); err != nil {
		return Table{}, err
	}
	records, err := c.Records(ctx)
	if err != nil {
		return Table{}, err
	}
	ordered := lq.Ordered(records, q, c.spec.Schema)
	rows := make([][]string, 0, len(ordered))
	for _, rec := range ordered {
		row := make([]string, len(c.spec.Columns))
		for i, col := range c.spec.Columns {
			v, _ := c.spec.Schema.Value(rec, col.ID)
			row[i] = lq.FormatValue(v)
		}
		rows = append(rows, row)
	}
	return Table{Title: c.spec.Title, Columns: c.spec.Columns, Rows: rows}, nil
}

// Refresh reloads a database-backed source and drops cached pages.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	if r, ok := c.source.(interface{ Refresh(context.Context) error }); ok {
		if err := r.Refresh(ctx); err != nil {
			return fmt.Errorf("refresh %s: %w", c.spec.Name, err)
		}
	}
	c.memo.Purge()
	return nil
}

func (c *Collection[T]) Version() uint64 { return c.source.Version() }

// Replace swaps the records of a replaceable source. It reports false
// when the source cannot be replaced.
func (c *Collection[T]) Replace(records []T) bool {
	r, ok := c.source.(repositories.Replacer[T])
	if !ok {
		return false
	}
	r.Replace(records)
	c.memo.Purge()
	return true
}

func (c *Collection[T]) snapshot() []T {
	records, err := c.source.All(context.Background())
	if err != nil {
		log.Error().Err(err).Str("collection", c.spec.Name).Msg("load records for view")
		return nil
	}
	return records
}
