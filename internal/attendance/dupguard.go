package attendance

import "strings"

// normalizeName is the logical-identity form of a member name: surrounding
// whitespace and letter case carry no meaning.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Candidate is a proposed attendance entry, before it has an id.
type Candidate struct {
	Name        string
	ServiceName string
	Date        string // YYYY-MM-DD
}

// IsDuplicate reports whether candidate collides with any existing record.
// Names are compared normalized; service name and date are compared exactly,
// case-sensitively. The caller must pass a freshly queried snapshot taken
// immediately before insert: this check narrows the concurrent-submission
// window but does not close it, and the store carries no uniqueness
// constraint for the triple.
func IsDuplicate(existing []Attendance, candidate Candidate) bool {
	want := normalizeName(candidate.Name)
	for _, rec := range existing {
		if normalizeName(rec.Name) == want &&
			rec.ServiceName == candidate.ServiceName &&
			rec.DateKey() == candidate.Date {
			return true
		}
	}
	return false
}
