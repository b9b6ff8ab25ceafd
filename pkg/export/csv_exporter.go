package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter renders an agenda into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the agenda.
func (e *CSVExporter) Render(agenda Agenda) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(agendaHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range agenda.Rows {
		record := []string{row.Date, row.Start, row.End, row.Label, row.Kind}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
