package membership

import "strings"

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Reconcile collapses duplicate member rows into one canonical view per
// person. Rows belong to the same person when their names match after
// trimming and lowercasing. Within a group the row with the latest
// RecordedAt wins; rows without a timestamp sort before any timestamped row.
// The winner's name is returned trimmed. Group order follows each person's
// first appearance in the input.
func Reconcile(rows []Member) []Member {
	type group struct {
		winner Member
		order  int
	}

	groups := make(map[string]*group)
	sequence := make([]string, 0)

	for _, row := range rows {
		key := normalizeName(row.Name)
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{winner: row, order: len(sequence)}
			sequence = append(sequence, key)
			continue
		}
		if laterThan(row, g.winner) {
			g.winner = row
		}
	}

	out := make([]Member, 0, len(sequence))
	for _, key := range sequence {
		winner := groups[key].winner
		winner.Name = strings.TrimSpace(winner.Name)
		out = append(out, winner)
	}
	return out
}

// laterThan reports whether a should replace b as a group's winner. A missing
// timestamp counts as the oldest possible record.
func laterThan(a, b Member) bool {
	if a.RecordedAt == nil {
		return false
	}
	if b.RecordedAt == nil {
		return true
	}
	return a.RecordedAt.After(*b.RecordedAt)
}
