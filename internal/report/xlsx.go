package report

import (
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// WriteXLSX renders the report as one worksheet: the overall summary first,
// then the same stacked block layout the CSV export uses, with bold headers
// and totals.
func WriteXLSX(w io.Writer, m *Model) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	cursor := 1
	if err := setRow(f, cursor, []string{"OVERALL SUMMARY"}); err != nil {
		return err
	}
	if err := styleRow(f, cursor, 1, boldStyle); err != nil {
		return err
	}
	cursor++

	if err := setRow(f, cursor, []string{"Category", "Total Attendance"}); err != nil {
		return err
	}
	if err := styleRow(f, cursor, 2, boldStyle); err != nil {
		return err
	}
	cursor++

	totals, grand := m.OverallTotals()
	for _, t := range totals {
		if err := setRow(f, cursor, []string{t.Category, strconv.Itoa(t.Count)}); err != nil {
			return err
		}
		cursor++
	}

	if err := setRow(f, cursor, []string{"GRAND TOTAL", strconv.Itoa(grand)}); err != nil {
		return err
	}
	if err := styleRow(f, cursor, 2, boldStyle); err != nil {
		return err
	}
	cursor += 2

	for _, block := range m.Dates {
		if err := setRow(f, cursor, []string{block.Date + " - " + m.ServiceName}); err != nil {
			return err
		}
		if err := styleRow(f, cursor, 1, boldStyle); err != nil {
			return err
		}
		cursor++

		header := Header()
		if err := setRow(f, cursor, header); err != nil {
			return err
		}
		if err := styleRow(f, cursor, len(header), boldStyle); err != nil {
			return err
		}
		cursor++

		for _, row := range block.Rows() {
			if err := setRow(f, cursor, row); err != nil {
				return err
			}
			cursor++
		}

		totals := block.Totals()
		if err := setRow(f, cursor, totals); err != nil {
			return err
		}
		if err := styleRow(f, cursor, len(totals), boldStyle); err != nil {
			return err
		}
		cursor += 2
	}

	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []string) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func styleRow(f *excelize.File, row, width, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, start, end, style)
}
