// Package export renders tabular report data into downloadable files.
// Each format implements the Exporter interface so handlers can pick a
// renderer from the request's format parameter and stream the result.
package export

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Column describes a single table column
type Column struct {
	Key   string
	Label string
	// Width is a column width hint used by the XLSX and PDF renderers
	Width float64
}

// Row maps column keys to cell values
type Row map[string]interface{}

// Table is the format-independent representation of an export
type Table struct {
	Title       string
	GeneratedAt time.Time
	Columns     []Column
	Rows        []Row
}

// Exporter renders a table into a specific file format
type Exporter interface {
	ContentType() string
	Extension() string
	Write(w io.Writer, t *Table) error
}

// ForFormat returns the exporter for a format name
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "xlsx":
		return &XLSXExporter{}, nil
	case "pdf":
		return &PDFExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// CellString converts a cell value to its display string
func CellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
