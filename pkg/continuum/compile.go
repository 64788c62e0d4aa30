package continuum

import (
	"fmt"
	"sort"
)

// Option configures a compilation.
type Option func(*compiler)

// WithTenureRecords enables historic tenure-record tracking on every
// compiled instant.
func WithTenureRecords() Option {
	return func(c *compiler) { c.trackTenure = true }
}

type compiler struct {
	trackTenure bool
}

// Compile sorts the events with CompareEvents and folds them into a
// sequence of instants, one per distinct date, each inheriting the
// carried-over state of its predecessor. The input slice is not
// modified. Compilation is all-or-nothing: the first invalid event in
// sorted order aborts with a *ReduceError and no timeline is returned.
//
// Zero events still compile to a timeline with exactly one instant,
// the empty one at Genesis.
func Compile(events []Event, opts ...Option) (*Timeline, error) {
	var c compiler
	for _, opt := range opts {
		opt(&c)
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareEvents(sorted[i], sorted[j]) < 0
	})

	current := NewInstant(Genesis, nil)
	if c.trackTenure {
		current.Records = map[string][]TenureRecord{}
	}
	var sealed []*Instant

	for _, ev := range sorted {
		cmp := CompareDates(ev.EventDate(), current.Date)
		if cmp < 0 {
			return nil, fmt.Errorf("event %q at %q before instant %q: %w",
				ev.EventKind(), ev.EventDate(), current.Date, ErrOutOfOrder)
		}
		if cmp > 0 {
			next := NewInstant(ev.EventDate(), current)
			sealed = append(sealed, current)
			current = next
		}
		if err := Reduce(current, ev); err != nil {
			return nil, err
		}
	}
	sealed = append(sealed, current)

	return newTimeline(sealed), nil
}
