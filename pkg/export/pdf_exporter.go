package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders an agenda into a tabular PDF grouped by day.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with a title line and one table section per day.
func (e *PDFExporter) Render(agenda Agenda) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if agenda.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(agenda.Title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	colWidths := []float64{30, 22, 22, 86, 30}
	currentDate := ""
	for _, row := range agenda.Rows {
		if row.Date != currentDate {
			currentDate = row.Date
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(0, 8, currentDate, "", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "B", 9)
			for i, header := range agendaHeaders {
				pdf.CellFormat(colWidths[i], 7, header, "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.SetFont("Arial", "", 9)
		values := []string{row.Date, row.Start, row.End, row.Label, row.Kind}
		for i, value := range values {
			pdf.CellFormat(colWidths[i], 7, value, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
