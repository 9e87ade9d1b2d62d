package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() *Table {
	return &Table{
		Title:       "Sales Report",
		GeneratedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		Columns: []Column{
			{Key: "invoice_no", Label: "Invoice", Width: 16},
			{Key: "total", Label: "Total", Width: 12},
			{Key: "items", Label: "Items", Width: 8},
		},
		Rows: []Row{
			{"invoice_no": "INV-001", "total": 120.5, "items": 3},
			{"invoice_no": "INV-002", "total": 9.99, "items": 1},
		},
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"csv", "xlsx", "pdf"} {
		exp, err := ForFormat(format)
		require.NoError(t, err)
		assert.Equal(t, format, exp.Extension())
		assert.NotEmpty(t, exp.ContentType())
	}

	_, err := ForFormat("docx")
	assert.Error(t, err)
}

func TestCSVWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVExporter{}).Write(&buf, sampleTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Invoice", "Total", "Items"}, records[0])
	assert.Equal(t, []string{"INV-001", "120.50", "3"}, records[1])
	assert.Equal(t, []string{"INV-002", "9.99", "1"}, records[2])
}

func TestCSVWriteQuotesSpecialCharacters(t *testing.T) {
	tricky := `Acme, "Ltd"` + "\nSecond Line"
	table := &Table{
		Title: "Sales Report",
		Columns: []Column{
			{Key: "customer_name", Label: "Customer", Width: 34},
			{Key: "total", Label: "Total", Width: 12},
		},
		Rows: []Row{
			{"customer_name": tricky, "total": 10.0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, (&CSVExporter{}).Write(&buf, table))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	// commas, quotes and newlines survive the round trip unchanged
	assert.Equal(t, tricky, records[1][0])
	assert.Equal(t, "10.00", records[1][1])
}

func TestXLSXWriteReopens(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&XLSXExporter{}).Write(&buf, sampleTable()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)

	assert.Equal(t, "Invoice", rows[0][0])
	assert.Equal(t, "INV-001", rows[1][0])
}

func TestPDFWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PDFExporter{}).Write(&buf, sampleTable()))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	assert.Greater(t, buf.Len(), 500)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))

	long := strings.Repeat("a", maxPDFCellLen+10)
	got := truncate(long)
	assert.Len(t, got, maxPDFCellLen)
	assert.True(t, strings.HasSuffix(got, "..."))

	// multibyte names must cut on rune boundaries
	wide := strings.Repeat("å", maxPDFCellLen+10)
	got = truncate(wide)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxPDFCellLen, utf8.RuneCountInString(got))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "abc", CellString("abc"))
	assert.Equal(t, "42", CellString(42))
	assert.Equal(t, "12.50", CellString(12.5))
	assert.Equal(t, "true", CellString(true))
	assert.Equal(t, "2026-05-01", CellString(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)))
}
