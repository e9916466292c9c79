package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(value string) *time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return &t
}

func TestReconcileLatestTimestampWins(t *testing.T) {
	rows := []Member{
		{Name: "John Doe", Category: "L100", RecordedAt: ts("2026-01-01T10:00:00Z")},
		{Name: "john doe", Category: "L200", RecordedAt: ts("2026-02-01T10:00:00Z")},
		{Name: " JOHN DOE ", Category: "L300", RecordedAt: ts("2026-01-15T10:00:00Z")},
	}

	got := Reconcile(rows)

	assert.Len(t, got, 1)
	assert.Equal(t, "john doe", got[0].Name)
	assert.Equal(t, "L200", got[0].Category)
}

func TestReconcileNilTimestampIsOldest(t *testing.T) {
	rows := []Member{
		{Name: "Jane Roe", Category: "Worker", RecordedAt: nil},
		{Name: "jane roe", Category: "L400", RecordedAt: ts("2026-01-01T10:00:00Z")},
	}

	got := Reconcile(rows)

	assert.Len(t, got, 1)
	assert.Equal(t, "L400", got[0].Category)
}

func TestReconcileAllNilTimestampsFirstRowWins(t *testing.T) {
	rows := []Member{
		{Name: "Sam Smith", Category: "Other"},
		{Name: "sam smith", Category: "New"},
	}

	got := Reconcile(rows)

	assert.Len(t, got, 1)
	assert.Equal(t, "Other", got[0].Category)
}

func TestReconcileTrimsWinnerName(t *testing.T) {
	rows := []Member{
		{Name: "  Ada Obi  ", Category: "L100", RecordedAt: ts("2026-01-01T10:00:00Z")},
	}

	got := Reconcile(rows)

	assert.Equal(t, "Ada Obi", got[0].Name)
}

func TestReconcilePreservesFirstAppearanceOrder(t *testing.T) {
	rows := []Member{
		{Name: "Charlie", Category: "L100"},
		{Name: "Alice", Category: "L100"},
		{Name: "charlie", Category: "L200", RecordedAt: ts("2026-01-01T10:00:00Z")},
		{Name: "Bob", Category: "L100"},
	}

	got := Reconcile(rows)

	names := make([]string, 0, len(got))
	for _, m := range got {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"charlie", "Alice", "Bob"}, names)
}

func TestReconcileEmpty(t *testing.T) {
	assert.Empty(t, Reconcile(nil))
}
