package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"dashkit/internal/catalog"
	"dashkit/internal/config"
	"dashkit/internal/domain"
	"dashkit/internal/domain/models"
	lq "dashkit/internal/listquery"
	"dashkit/internal/store"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.FixtureSources(), 16)
	require.NoError(t, err)
	return c
}

func ptr[T any](v T) *T { return &v }

func TestViewServiceKeepsStatePerUser(t *testing.T) {
	c := newCatalog(t)
	svc, err := NewViewService(c.Registry, 8)
	require.NoError(t, err)

	st, err := svc.Apply("1", "items", ViewPatch{
		Toggle: &ToggleOption{FieldID: "status", Value: "Low Stock"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, st.Result.Total)
	assert.Equal(t, 1, st.Filters)

	other, err := svc.Current("2", "items")
	require.NoError(t, err)
	assert.Equal(t, 12, other.Result.Total)

	again, err := svc.Current("1", "items")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Result.Total)
	assert.Equal(t, 2, svc.Len())

	st, err = svc.Reset("1", "items")
	require.NoError(t, err)
	assert.Equal(t, 12, st.Result.Total)
	assert.Empty(t, st.Query.Filters)
}

func TestViewServiceConcurrentFirstRequestsShareOneView(t *testing.T) {
	c := newCatalog(t)
	svc, err := NewViewService(c.Registry, 8)
	require.NoError(t, err)

	const n = 16
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			_, err := svc.Apply("1", "items", ViewPatch{
				Toggle: &ToggleOption{FieldID: "category", Value: fmt.Sprintf("c%02d", i)},
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, svc.Len())
	st, err := svc.Current("1", "items")
	require.NoError(t, err)
	require.Len(t, st.Query.Filters, 1)
	assert.Len(t, st.Query.Filters[0].Values, n)
}

func TestViewServiceSortAndPage(t *testing.T) {
	c := newCatalog(t)
	svc, err := NewViewService(c.Registry, 8)
	require.NoError(t, err)

	st, err := svc.Apply("1", "orders", ViewPatch{
		Sort:      &lq.SortState{Field: "total", Direction: lq.Asc},
		PageIndex: ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Result.PageIndex)
	assert.Len(t, st.Result.Rows, 3)
	assert.False(t, st.Result.CanAdvance)

	st, err = svc.Apply("1", "orders", ViewPatch{Search: ptr("acme")})
	require.NoError(t, err)
	assert.Equal(t, 0, st.Result.PageIndex, "search returns to the first page")

	st, err = svc.Apply("1", "orders", ViewPatch{ClearSort: true})
	require.NoError(t, err)
	assert.Nil(t, st.Query.Sort)
}

func TestViewServiceRejectsUndeclaredFields(t *testing.T) {
	c := newCatalog(t)
	svc, err := NewViewService(c.Registry, 8)
	require.NoError(t, err)

	_, err = svc.Apply("1", "items", ViewPatch{Sort: &lq.SortState{Field: "sku", Direction: lq.Asc}})
	assert.True(t, domain.IsValidation(err))
	_, err = svc.Apply("1", "items", ViewPatch{PageIndex: ptr(-1)})
	assert.True(t, domain.IsValidation(err))
	_, err = svc.Apply("1", "nope", ViewPatch{})
	assert.True(t, domain.IsNotFound(err))

	st, err := svc.Current("1", "items")
	require.NoError(t, err)
	assert.Nil(t, st.Query.Sort, "a rejected patch changes nothing")
}

func newDocs(t *testing.T) *DocumentService {
	return &DocumentService{
		KV:       store.NewMemoryStore(),
		Registry: newCatalog(t).Registry,
		Uploads:  config.Default().Uploads,
	}
}

func TestDocumentLimits(t *testing.T) {
	svc := newDocs(t)
	assert.Equal(t, 5, svc.Limits("items").MaxFiles)
	assert.Equal(t, 10, svc.Limits("orders").MaxFiles)
	assert.Equal(t, 10, svc.Limits("orders").MaxFileSizeMB)
}

func TestDocumentAddListRemove(t *testing.T) {
	svc := newDocs(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, "orders", "ORD-1047", []models.Upload{
		{Name: "receipt.pdf", ContentType: "application/pdf", Size: 2048},
		{Name: "photo.png", ContentType: "image/png", Size: 3 * 1024 * 1024},
	}, "admin")
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, "2.0 KB", added[0].SizeLabel)
	assert.Equal(t, "3.0 MB", added[1].SizeLabel)

	docs, err := svc.List(ctx, "orders", "ORD-1047")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	require.NoError(t, svc.Remove(ctx, "orders", "ORD-1047", added[0].ID))
	docs, err = svc.List(ctx, "orders", "ORD-1047")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "photo.png", docs[0].Name)

	assert.True(t, domain.IsNotFound(svc.Remove(ctx, "orders", "ORD-1047", "missing")))
	_, err = svc.List(ctx, "orders", "ORD-0")
	assert.True(t, domain.IsNotFound(err))
}

func TestDocumentValidationMessages(t *testing.T) {
	svc := newDocs(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "items", "1", []models.Upload{{Name: "big.pdf", ContentType: "application/pdf", Size: 11 * 1024 * 1024}}, "")
	require.Error(t, err)
	assert.Equal(t, `"big.pdf" exceeds the 10 MB limit.`, err.Error())

	_, err = svc.Add(ctx, "items", "1", []models.Upload{{Name: "notes.txt", ContentType: "text/plain", Size: 10}}, "")
	require.Error(t, err)
	assert.Equal(t, `"notes.txt" has an unsupported format.`, err.Error())

	six := make([]models.Upload, 6)
	for i := range six {
		six[i] = models.Upload{Name: "a.png", ContentType: "image/png", Size: 1}
	}
	_, err = svc.Add(ctx, "items", "1", six, "")
	require.Error(t, err)
	assert.Equal(t, "You can upload at most 5 files.", err.Error())

	docs, err := svc.List(ctx, "items", "1")
	require.NoError(t, err)
	assert.Empty(t, docs, "failed uploads attach nothing")
}

func TestAcceptedFormatExtension(t *testing.T) {
	limits := models.UploadLimits{MaxFileSizeMB: 1, AcceptedFormats: []string{".csv"}}
	assert.NoError(t, CheckUpload(models.Upload{Name: "DATA.CSV", ContentType: "text/csv", Size: 1}, limits))
	assert.Error(t, CheckUpload(models.Upload{Name: "data.tsv", ContentType: "text/csv", Size: 1}, limits))
}

func TestExportPDF(t *testing.T) {
	c := newCatalog(t)
	svc := ExportService{Registry: c.Registry, Now: func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }}
	ctx := context.Background()

	q := lq.Query{Filters: []lq.ActiveFilter{{FieldID: "status", Values: []string{"Low Stock"}}}}
	out, name, err := svc.PDF(ctx, "items", ExportResults, q)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "items_results_20260301.pdf", name)

	all, name, err := svc.PDF(ctx, "items", ExportAll, q)
	require.NoError(t, err)
	assert.Equal(t, "items_all_20260301.pdf", name)
	assert.Greater(t, len(all), len(out))

	_, _, err = svc.PDF(ctx, "nope", ExportAll, lq.Query{})
	assert.True(t, domain.IsNotFound(err))
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths([]catalog.Column{{Width: 10}, {Width: 30}, {}})
	assert.InDelta(t, pageWidth, widths[0]+widths[1]+widths[2], 0.001)
	assert.InDelta(t, widths[1], widths[2], 0.001)
}

type fakeProbe struct {
	mem, disk float64
	err       error
}

func (p fakeProbe) MemoryUsed(context.Context) (float64, error) { return p.mem, p.err }
func (p fakeProbe) DiskUsed(context.Context) (float64, error)   { return p.disk, p.err }

func TestDashboardHealth(t *testing.T) {
	svc := DashboardService{Probe: fakeProbe{mem: 40, disk: 65}}
	health := svc.Health(context.Background())
	require.Len(t, health, 5)
	assert.Equal(t, models.HealthCheck{Name: "Storage", Value: 35, Status: "critical"}, health[3])
	assert.Equal(t, models.HealthCheck{Name: "Memory", Value: 60, Status: "warning"}, health[4])

	failing := DashboardService{Probe: fakeProbe{err: errors.New("no procfs")}}
	assert.Equal(t, fixtureHealth, failing.Health(context.Background()))
}

func TestDashboardActivityNewestFirst(t *testing.T) {
	svc := DashboardService{Catalog: newCatalog(t)}
	page, err := svc.Activity(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 8, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Rows, 5)
	assert.Equal(t, "1", page.Rows[0].ID)
	assert.True(t, page.CanAdvance)

	last, err := svc.Activity(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, last.Rows, 3)
	assert.Equal(t, "8", last.Rows[2].ID)
}

func TestCalendarDropsMissingDays(t *testing.T) {
	svc := DashboardService{Now: func() time.Time { return time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC) }}
	cal := svc.Calendar()
	assert.Equal(t, "February", cal.Month)
	assert.Len(t, cal.Events, 7)

	svc.Now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	for _, e := range svc.Calendar().Events {
		assert.LessOrEqual(t, e.Day, 28)
	}
}

func TestStaticPages(t *testing.T) {
	var svc DashboardService
	assert.Len(t, svc.Analytics().Metrics, 8)
	assert.Len(t, svc.Analytics().Sources, 5)
	assert.Len(t, svc.Inbox(), 6)
	assert.Len(t, svc.Messages().Conversations, 5)
	assert.Len(t, svc.Support().FAQs, 5)
}

type countingRefresher struct{ calls chan struct{} }

func (c countingRefresher) RefreshAll(context.Context) error {
	c.calls <- struct{}{}
	return nil
}

func TestRefresherRunsOnSchedule(t *testing.T) {
	target := countingRefresher{calls: make(chan struct{}, 8)}
	r, err := NewRefresher(target, "@every 1s", time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case <-target.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("refresh never ran")
	}
	cancel()
	require.NoError(t, <-done)

	_, err = NewRefresher(target, "every now and then", 0)
	assert.Error(t, err)
}
