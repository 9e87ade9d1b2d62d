package export

import (
	"encoding/csv"
	"io"
)

// CSVExporter renders tables as RFC 4180 CSV
type CSVExporter struct{}

func (e *CSVExporter) ContentType() string {
	return "text/csv"
}

func (e *CSVExporter) Extension() string {
	return "csv"
}

func (e *CSVExporter) Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = CellString(row[col.Key])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
