package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// core PDF fonts cover cp1252 only
var pdfReplacer = strings.NewReplacer("γ", "gamma", "∞", "inf", "✓", "", "✗", "")

// WritePDF renders the report on A4 landscape pages.
func WritePDF(w io.Writer, rep *Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(rep.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	enc := func(s string) string { return tr(pdfReplacer.Replace(s)) }

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, enc(fmt.Sprintf("%s - %s", rep.Title, rep.Mark)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, enc("Result ID: "+rep.ID))
	pdf.Ln(6)
	if !rep.CreatedAt.IsZero() {
		pdf.Cell(0, 6, enc("Date: "+rep.CreatedAt.Format("2006-01-02 15:04")))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, enc("Design force Nd: "+rep.Force.Text+" kN"))
	pdf.Ln(10)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	for _, t := range rep.Tables {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, enc(t.Title))
		pdf.Ln(9)

		colW := usable / float64(len(t.Columns))
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range t.Columns {
			pdf.CellFormat(colW, 7, enc(c.Header()), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, row := range t.Rows {
			for _, c := range row {
				align := "L"
				if c.IsNum {
					align = "R"
				}
				pdf.CellFormat(colW, 7, enc(c.Text), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, enc("Overall judgment: "+string(rep.Judgment)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report.WritePDF: %w", err)
	}
	return nil
}
