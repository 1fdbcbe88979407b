// Package export writes a board snapshot as JSON, CSV or PDF.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

var csvHeader = []string{"id", "title", "description", "status", "created_at", "updated_at"}

// Write renders cols in the given format. Tasks appear column by column.
func Write(w io.Writer, format string, cols []core.Column) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return writeJSON(w, cols)
	case FormatCSV:
		return writeCSV(w, cols)
	case FormatPDF:
		return writePDF(w, cols)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func flatten(cols []core.Column) []core.Task {
	out := []core.Task{}
	for _, c := range cols {
		out = append(out, c.Tasks...)
	}
	return out
}

func writeJSON(w io.Writer, cols []core.Column) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(flatten(cols))
}

func writeCSV(w io.Writer, cols []core.Column) error {
	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	for _, t := range flatten(cols) {
		_ = cw.Write([]string{
			t.ID,
			t.Title,
			t.Description,
			string(t.Status),
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, cols []core.Column) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Kanban Board")
	pdf.Ln(14)

	for _, col := range cols {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks)))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 10)
		if len(col.Tasks) == 0 {
			pdf.MultiCell(0, 6, "No tasks yet", "0", "L", false)
		}
		for _, t := range col.Tasks {
			line := tr(t.Title)
			if t.Description != "" {
				line += " - " + tr(t.Description)
			}
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
