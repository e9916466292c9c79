package report

import (
	"encoding/csv"
	"io"
)

// WriteCSV renders the report as stacked blocks, one per service date: a
// title line, the category header, the padded attendee rows, the totals row,
// then a blank separator line.
func WriteCSV(w io.Writer, m *Model) error {
	cw := csv.NewWriter(w)

	for _, block := range m.Dates {
		if err := cw.Write([]string{block.Date + " - " + m.ServiceName}); err != nil {
			return err
		}
		if err := cw.Write(Header()); err != nil {
			return err
		}
		for _, row := range block.Rows() {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		if err := cw.Write(block.Totals()); err != nil {
			return err
		}
		if err := cw.Write([]string{""}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
