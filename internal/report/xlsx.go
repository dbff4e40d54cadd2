package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// WriteXLSX writes a summary sheet plus one sheet per table.
func WriteXLSX(w io.Writer, rep *Report) error {
	const op = "report.WriteXLSX"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	summary := [][]any{
		{"Title", rep.Title},
		{"Mark", rep.Mark},
		{"Result ID", rep.ID},
		{"Date", rep.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Design force Nd (kN)", rep.Force.Num.InexactFloat64()},
		{"Judgment", string(rep.Judgment)},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range rep.Tables {
		if _, err := f.NewSheet(t.Title); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		header := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			header[i] = c.Header()
		}
		if err := f.SetSheetRow(t.Title, "A1", &header); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err := f.SetCellStyle(t.Title, "A1", last, bold); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		for r, row := range t.Rows {
			values := make([]any, len(row))
			for i, c := range row {
				if c.IsNum {
					values[i] = c.Num.InexactFloat64()
				} else {
					values[i] = c.Text
				}
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(t.Title, cell, &values); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
