// Package index holds the parsed event list and answers the day and week
// range queries the views are built from.
package index

import (
	"sort"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/ics"
)

// Index owns the full event list in order of appearance in the source file.
// It is populated once at startup and read-only afterwards.
type Index struct {
	events []ics.Event
}

// New builds an Index over events. The slice is taken as-is, in encounter
// order.
func New(events []ics.Event) *Index {
	return &Index{events: events}
}

// Len returns the total number of events.
func (ix *Index) Len() int { return len(ix.events) }

// EventsOnDay returns the events whose start date is exactly d, sorted by
// start time ascending, ties by end time, equal pairs in encounter order.
func (ix *Index) EventsOnDay(d caltime.Date) []ics.Event {
	var out []ics.Event
	for _, ev := range ix.events {
		if ev.Start.Date == d {
			out = append(out, ev)
		}
	}
	sortByStart(out)
	return out
}

// EventsInWeek returns the events of the ISO week (Monday through Sunday,
// both inclusive) containing d, sorted like EventsOnDay. Weeks that would
// fall off the representable calendar range are clamped, never an error.
func (ix *Index) EventsInWeek(d caltime.Date) []ics.Event {
	monday, sunday := caltime.WeekBounds(d)
	var out []ics.Event
	for _, ev := range ix.events {
		if ev.Start.Date.Before(monday) || ev.Start.Date.After(sunday) {
			continue
		}
		out = append(out, ev)
	}
	sortByStart(out)
	return out
}

func sortByStart(events []ics.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if c := events[i].Start.Compare(events[j].Start); c != 0 {
			return c < 0
		}
		return events[i].End.Before(events[j].End)
	})
}

// OngoingIndex returns the position of the first event in events whose
// [start, end] time-of-day interval contains now. First match wins even when
// intervals overlap. ok is false when now falls in a gap.
func OngoingIndex(events []ics.Event, now caltime.Clock) (i int, ok bool) {
	for i, ev := range events {
		if !ev.Start.Clock.After(now) && !ev.End.Clock.Before(now) {
			return i, true
		}
	}
	return -1, false
}
