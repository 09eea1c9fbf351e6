package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"dashkit/internal/catalog"
	lq "dashkit/internal/listquery"
	"dashkit/internal/utils"
)

// ExportMode picks which records go into an export.
type ExportMode string

const (
	// ExportResults exports every page of the current query.
	ExportResults ExportMode = "results"
	// ExportAll exports the whole collection in source order.
	ExportAll ExportMode = "all"
)

func (m ExportMode) Valid() bool { return m == ExportResults || m == ExportAll }

// ExportService renders collections as PDF tables.
type ExportService struct {
	Registry  *catalog.Registry
	RequestID string
	Now       func() time.Time
}

// PDF exports collection name and returns the document and its file name.
func (s ExportService) PDF(ctx context.Context, name string, mode ExportMode, q lq.Query) ([]byte, string, error) {
	l, err := s.Registry.Get(name)
	if err != nil {
		return nil, "", err
	}
	if mode == ExportAll {
		q = lq.Query{}
	}
	table, err := l.Table(ctx, q)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	out, err := buildTablePDF(table, mode, now)
	if err != nil {
		utils.LogError(s.RequestID, "export", "pdf", err)
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "pdf", fmt.Sprintf("collection=%s mode=%s rows=%d", name, mode, len(table.Rows)))
	filename := fmt.Sprintf("%s_%s_%s.pdf", utils.SafeFilenamePart(name), mode, now.Format("20060102"))
	return out, filename, nil
}

const pageWidth = 277.0

func buildTablePDF(t catalog.Table, mode ExportMode, at time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(t.Title, false)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, t.Title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	subtitle := "All records"
	if mode == ExportResults {
		subtitle = "Filtered results"
	}
	pdf.Cell(0, 6, fmt.Sprintf("%s - %d rows - generated %s", subtitle, len(t.Rows), utils.FormatDateTime(at)))
	pdf.Ln(9)

	widths := columnWidths(t.Columns)
	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		for i, col := range t.Columns {
			pdf.CellFormat(widths[i], 7, col.Label, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, row := range t.Rows {
		if pdf.GetY() > 190 {
			pdf.AddPage()
			header()
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, tr(fit(pdf, cell, widths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(t.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, "No records match the current filters.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// columnWidths scales the declared widths to fill the page.
func columnWidths(cols []catalog.Column) []float64 {
	total := 0.0
	for _, c := range cols {
		w := c.Width
		if w <= 0 {
			w = 30
		}
		total += w
	}
	out := make([]float64, len(cols))
	for i, c := range cols {
		w := c.Width
		if w <= 0 {
			w = 30
		}
		out[i] = w / total * pageWidth
	}
	return out
}

// fit truncates s so it fits in a cell of width w.
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w-2 {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w-2 {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
