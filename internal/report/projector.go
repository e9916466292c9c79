package report

import (
	"net/http"
	"strconv"

	"go-chms/internal/attendance"
	"go-chms/internal/shared/apperror"
)

var ErrNoReportData = apperror.New(
	"NO_REPORT_DATA",
	"No attendance records exist for this service",
	http.StatusNotFound,
)

// DateBlock is one service date: per category, the attendees in arrival
// order.
type DateBlock struct {
	Date       string
	Categories map[string][]string
}

// Model is a whole report for one service. Dates keep the order in which
// each date first appears in the record stream.
type Model struct {
	ServiceName string
	Dates       []DateBlock
}

// Project filters records to one service, matching the service name exactly
// and case-sensitively, then groups attendees by date and category. Returns
// ErrNoReportData when the service has no records at all.
func Project(records []attendance.Attendance, serviceName string) (*Model, error) {
	model := &Model{ServiceName: serviceName}
	blockIndex := make(map[string]int)

	for _, rec := range records {
		if rec.ServiceName != serviceName {
			continue
		}

		key := rec.DateKey()
		idx, ok := blockIndex[key]
		if !ok {
			idx = len(model.Dates)
			blockIndex[key] = idx
			model.Dates = append(model.Dates, DateBlock{
				Date:       key,
				Categories: make(map[string][]string),
			})
		}

		block := &model.Dates[idx]
		block.Categories[rec.Category] = append(block.Categories[rec.Category], rec.Name)
	}

	if len(model.Dates) == 0 {
		return nil, ErrNoReportData
	}
	return model, nil
}

// CategoryTotal is one line of the overall summary.
type CategoryTotal struct {
	Category string
	Count    int
}

// OverallTotals sums each category across every date block, in the fixed
// category order, and returns the grand total alongside.
func (m *Model) OverallTotals() ([]CategoryTotal, int) {
	totals := make([]CategoryTotal, 0, len(attendance.CategoryOrder))
	grand := 0
	for _, category := range attendance.CategoryOrder {
		n := 0
		for _, block := range m.Dates {
			n += len(block.Categories[category])
		}
		grand += n
		totals = append(totals, CategoryTotal{Category: category, Count: n})
	}
	return totals, grand
}

// Header is the fixed column layout every block renders with.
func Header() []string {
	out := make([]string, 0, len(attendance.CategoryOrder)+1)
	out = append(out, attendance.CategoryOrder...)
	return append(out, "Total")
}

// Rows renders a block as positional rows: row i holds each category's i-th
// attendee, blank where a category has fewer people. The final column stays
// empty until the totals row.
func (b DateBlock) Rows() [][]string {
	depth := 0
	for _, category := range attendance.CategoryOrder {
		if n := len(b.Categories[category]); n > depth {
			depth = n
		}
	}

	rows := make([][]string, 0, depth)
	for i := 0; i < depth; i++ {
		row := make([]string, 0, len(attendance.CategoryOrder)+1)
		for _, category := range attendance.CategoryOrder {
			names := b.Categories[category]
			if i < len(names) {
				row = append(row, names[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, "")
		rows = append(rows, row)
	}
	return rows
}

// Totals is the closing row: per-category head counts and the grand total.
func (b DateBlock) Totals() []string {
	row := make([]string, 0, len(attendance.CategoryOrder)+1)
	total := 0
	for _, category := range attendance.CategoryOrder {
		n := len(b.Categories[category])
		total += n
		row = append(row, strconv.Itoa(n))
	}
	return append(row, strconv.Itoa(total))
}
