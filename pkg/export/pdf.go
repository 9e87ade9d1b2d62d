package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// maxPDFCellLen caps cell text so long product or customer names do
// not overflow their column
const maxPDFCellLen = 50

// PDFExporter renders tables as landscape A4 PDF documents
type PDFExporter struct{}

func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}

func (e *PDFExporter) Extension() string {
	return "pdf"
}

func (e *PDFExporter) Write(w io.Writer, t *Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 9, t.Title, "", 1, "L", false, 0, "")
	if !t.GeneratedAt.IsZero() {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 6, "Generated "+t.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	widths := e.columnWidths(pdf, t)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(60, 60, 60)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range t.Columns {
			pdf.CellFormat(widths[i], 8, truncate(col.Label), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	drawHeader()

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for r, row := range t.Rows {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(0, 0, 0)
		}

		fill := r%2 == 1
		pdf.SetFillColor(240, 240, 240)
		for i, col := range t.Columns {
			pdf.CellFormat(widths[i], 7, truncate(CellString(row[col.Key])), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// columnWidths distributes the printable width across columns using
// the configured width hints as relative weights
func (e *PDFExporter) columnWidths(pdf *fpdf.Fpdf, t *Table) []float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	total := 0.0
	for _, col := range t.Columns {
		w := col.Width
		if w <= 0 {
			w = 1
		}
		total += w
	}

	widths := make([]float64, len(t.Columns))
	for i, col := range t.Columns {
		w := col.Width
		if w <= 0 {
			w = 1
		}
		widths[i] = usable * w / total
	}
	return widths
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxPDFCellLen {
		return s
	}
	return string(runes[:maxPDFCellLen-3]) + "..."
}
