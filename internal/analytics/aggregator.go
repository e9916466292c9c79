package analytics

import (
	"strings"

	"go-chms/internal/attendance"
)

// ServiceSummary is one service's share of the overview: a head count and a
// per-category breakdown.
type ServiceSummary struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
}

// AggregateByService buckets records by their stored service name and
// category, verbatim. No trimming or case folding happens here; the overview
// reports the data exactly as it was captured.
func AggregateByService(records []attendance.Attendance) map[string]ServiceSummary {
	out := make(map[string]ServiceSummary)
	for _, rec := range records {
		summary, ok := out[rec.ServiceName]
		if !ok {
			summary = ServiceSummary{Categories: make(map[string]int)}
		}
		summary.Total++
		summary.Categories[rec.Category]++
		out[rec.ServiceName] = summary
	}
	return out
}

// GroupKey joins a calendar date and a service name into the key used by the
// grouped attendance view.
func GroupKey(date, serviceName string) string {
	return date + " - " + serviceName
}

// AggregateByServiceAndDate groups records by occasion (date plus service)
// and, inside each occasion, by category. Names keep the order in which the
// records arrive, which is insertion order when the caller passes records
// sorted by creation time.
func AggregateByServiceAndDate(records []attendance.Attendance) map[string]map[string][]string {
	out := make(map[string]map[string][]string)
	for _, rec := range records {
		key := GroupKey(rec.DateKey(), rec.ServiceName)
		group, ok := out[key]
		if !ok {
			group = make(map[string][]string)
			out[key] = group
		}
		group[rec.Category] = append(group[rec.Category], rec.Name)
	}
	return out
}

// DetailedSummary is the per-service drill-down.
type DetailedSummary struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
	Dates      map[string]int `json:"dates"`
}

// AggregateDetailed filters records to one service, matching service names
// leniently (trimmed, case-insensitive), then counts per category and per
// date. Category labels are trimmed and uppercased; records whose category is
// blank after trimming count toward the total but appear in no category
// bucket, so the category counts may sum below the total.
func AggregateDetailed(records []attendance.Attendance, serviceName string) DetailedSummary {
	want := strings.ToLower(strings.TrimSpace(serviceName))
	out := DetailedSummary{
		Categories: make(map[string]int),
		Dates:      make(map[string]int),
	}

	for _, rec := range records {
		if strings.ToLower(strings.TrimSpace(rec.ServiceName)) != want {
			continue
		}
		out.Total++
		out.Dates[rec.DateKey()]++

		category := strings.ToUpper(strings.TrimSpace(rec.Category))
		if category == "" {
			continue
		}
		out.Categories[category]++
	}

	return out
}
