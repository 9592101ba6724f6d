// Package ingestion reads raw resume and job description content into the
// pipeline: PDF text and table extraction, OCR fallback for scanned
// documents, and job description loading from a file or URL.
package ingestion

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor pulls raw text and table payloads out of a source document.
// Text may be empty for image-only scans; tables is empty when none are
// detected.
type TextExtractor interface {
	Extract(path string) (text string, tables [][][]string, err error)
}

// Recognizer recovers text from scanned documents. It never yields tables.
type Recognizer interface {
	RecognizeText(ctx context.Context, path string) (string, error)
}

// PDFExtractor extracts text and tables from PDF files.
type PDFExtractor struct{}

// Extract reads a PDF and returns its text, line structure preserved, plus
// any tables recovered from the page layout.
func (PDFExtractor) Extract(path string) (string, [][][]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", nil, &ExtractionError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var pages []string
	var tables [][][]string
	rowFailure := false

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			rowFailure = true
			break
		}

		pages = append(pages, pageText(rows))
		if table := pageTable(rows); table != nil {
			tables = append(tables, table)
		}
	}

	if rowFailure {
		// Some PDFs trip the row grouping; fall back to the flat text
		// stream and give up on tables for the whole document.
		text, err := plainText(reader)
		if err != nil {
			return "", nil, &ExtractionError{Path: path, Message: "failed to extract text", Cause: err}
		}
		return text, nil, nil
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), tables, nil
}

// pageText flattens row-grouped text into newline-separated lines, top of
// the page first.
func pageText(rows pdf.Rows) string {
	sorted := make(pdf.Rows, len(rows))
	copy(sorted, rows)
	// PDF y-coordinates grow upward, so the top row has the largest position.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position > sorted[j].Position
	})

	var lines []string
	for _, row := range sorted {
		line := strings.TrimSpace(rowText(row))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func rowText(row *pdf.Row) string {
	var b strings.Builder
	prevEnd := 0.0
	for i, t := range row.Content {
		if i > 0 && t.X > prevEnd {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return b.String()
}

// pageTable recovers a simple table from a page: rows whose text chunks are
// separated by wide horizontal gaps become cell rows. A page counts as
// having a table only when at least two such rows exist.
func pageTable(rows pdf.Rows) [][]string {
	var table [][]string
	for _, row := range rows {
		cells := rowCells(row)
		if len(cells) >= 2 {
			table = append(table, cells)
		}
	}
	if len(table) < 2 {
		return nil
	}
	return table
}

func rowCells(row *pdf.Row) []string {
	var cells []string
	var current strings.Builder
	prevEnd := 0.0

	for i, t := range row.Content {
		gap := t.X - prevEnd
		if i > 0 && gap > cellGap(t.FontSize) {
			cells = appendCell(cells, &current)
		} else if i > 0 && t.X > prevEnd {
			current.WriteByte(' ')
		}
		current.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return appendCell(cells, &current)
}

// cellGap is the horizontal distance treated as a column boundary.
func cellGap(fontSize float64) float64 {
	if fontSize <= 0 {
		fontSize = 12
	}
	return 2 * fontSize
}

func appendCell(cells []string, current *strings.Builder) []string {
	cell := strings.TrimSpace(current.String())
	current.Reset()
	if cell != "" {
		cells = append(cells, cell)
	}
	return cells
}

func plainText(reader *pdf.Reader) (string, error) {
	stream, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
