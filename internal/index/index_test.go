package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/ics"
)

func mkEvent(id string, date caltime.Date, start, end caltime.Clock) ics.Event {
	return ics.Event{
		ID:    id,
		Name:  id,
		Start: caltime.Moment{Date: date, Clock: start},
		End:   caltime.Moment{Date: date, Clock: end},
	}
}

func ids(events []ics.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func TestEventsOnDaySorted(t *testing.T) {
	day := caltime.Date{Year: 2024, Month: 6, Day: 10}
	other := caltime.Date{Year: 2024, Month: 6, Day: 11}
	// Deliberately out of order in the source.
	ix := New([]ics.Event{
		mkEvent("late", day, caltime.Clock{Hour: 13, Minute: 15}, caltime.Clock{Hour: 14, Minute: 45}),
		mkEvent("elsewhere", other, caltime.Clock{Hour: 8, Minute: 0}, caltime.Clock{Hour: 9, Minute: 0}),
		mkEvent("early", day, caltime.Clock{Hour: 7, Minute: 45}, caltime.Clock{Hour: 8, Minute: 30}),
	})

	got := ix.EventsOnDay(day)
	assert.Equal(t, []string{"early", "late"}, ids(got))
	assert.Empty(t, ix.EventsOnDay(caltime.Date{Year: 2024, Month: 6, Day: 12}))
}

func TestEventsOnDayTiesBrokenByEnd(t *testing.T) {
	day := caltime.Date{Year: 2024, Month: 6, Day: 10}
	start := caltime.Clock{Hour: 7, Minute: 45}
	ix := New([]ics.Event{
		mkEvent("long", day, start, caltime.Clock{Hour: 11, Minute: 0}),
		mkEvent("short", day, start, caltime.Clock{Hour: 8, Minute: 30}),
	})
	assert.Equal(t, []string{"short", "long"}, ids(ix.EventsOnDay(day)))
}

func TestEventsInWeekAcrossMonthBoundary(t *testing.T) {
	// The week of Wednesday 2024-01-31 runs Mon 2024-01-29 .. Sun 2024-02-04.
	ix := New([]ics.Event{
		mkEvent("mon", caltime.Date{Year: 2024, Month: 1, Day: 29}, caltime.Clock{Hour: 8, Minute: 0}, caltime.Clock{Hour: 9, Minute: 0}),
		mkEvent("sun", caltime.Date{Year: 2024, Month: 2, Day: 4}, caltime.Clock{Hour: 8, Minute: 0}, caltime.Clock{Hour: 9, Minute: 0}),
		mkEvent("before", caltime.Date{Year: 2024, Month: 1, Day: 28}, caltime.Clock{Hour: 8, Minute: 0}, caltime.Clock{Hour: 9, Minute: 0}),
		mkEvent("after", caltime.Date{Year: 2024, Month: 2, Day: 5}, caltime.Clock{Hour: 8, Minute: 0}, caltime.Clock{Hour: 9, Minute: 0}),
	})

	got := ix.EventsInWeek(caltime.Date{Year: 2024, Month: 1, Day: 31})
	assert.Equal(t, []string{"mon", "sun"}, ids(got), "both bounds are inclusive")
}

func TestOngoingIndex(t *testing.T) {
	day := caltime.Date{Year: 2024, Month: 6, Day: 10}
	events := []ics.Event{
		mkEvent("a", day, caltime.Clock{Hour: 7, Minute: 45}, caltime.Clock{Hour: 8, Minute: 30}),
		mkEvent("b", day, caltime.Clock{Hour: 9, Minute: 30}, caltime.Clock{Hour: 11, Minute: 0}),
	}

	i, ok := OngoingIndex(events, caltime.Clock{Hour: 8, Minute: 0})
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = OngoingIndex(events, caltime.Clock{Hour: 10, Minute: 0})
	require.True(t, ok)
	assert.Equal(t, 1, i)

	// A gap between events.
	_, ok = OngoingIndex(events, caltime.Clock{Hour: 9, Minute: 0})
	assert.False(t, ok)

	// Interval bounds are inclusive.
	i, ok = OngoingIndex(events, caltime.Clock{Hour: 8, Minute: 30})
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestOngoingIndexFirstMatchWins(t *testing.T) {
	day := caltime.Date{Year: 2024, Month: 6, Day: 10}
	events := []ics.Event{
		mkEvent("outer", day, caltime.Clock{Hour: 8, Minute: 0}, caltime.Clock{Hour: 12, Minute: 0}),
		mkEvent("inner", day, caltime.Clock{Hour: 9, Minute: 0}, caltime.Clock{Hour: 10, Minute: 0}),
	}
	i, ok := OngoingIndex(events, caltime.Clock{Hour: 9, Minute: 30})
	require.True(t, ok)
	assert.Equal(t, 0, i, "first match is reported, not the smallest interval")
}
