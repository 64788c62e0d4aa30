package continuum

import "github.com/Mindburn-Labs/continuum/pkg/canonical"

// Timeline is the compiled, queryable result of a compilation: the
// chronological sequence of sealed instants plus a date-keyed index.
// Timelines are immutable and safe for concurrent use; callers must
// not modify the instants they are handed.
type Timeline struct {
	instants []*Instant
	byDate   map[Date]*Instant
}

func newTimeline(instants []*Instant) *Timeline {
	byDate := make(map[Date]*Instant, len(instants))
	for _, inst := range instants {
		byDate[inst.Date] = inst
	}
	return &Timeline{instants: instants, byDate: byDate}
}

// Instants returns the dates of all instants in chronological order.
func (t *Timeline) Instants() []Date {
	dates := make([]Date, len(t.instants))
	for i, inst := range t.instants {
		dates[i] = inst.Date
	}
	return dates
}

// Instant returns the snapshot at the given date, if one exists.
func (t *Timeline) Instant(date Date) (*Instant, bool) {
	inst, ok := t.byDate[date]
	return inst, ok
}

// Len returns the number of instants.
func (t *Timeline) Len() int { return len(t.instants) }

// Fingerprint returns the canonical SHA-256 digest of the whole
// timeline. Two timelines compiled from the same event set, in any
// input order, produce the same fingerprint.
func (t *Timeline) Fingerprint() (string, error) {
	return canonical.Hash(t.instants)
}
