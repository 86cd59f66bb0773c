package timetable

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

// Week of Monday 2024-06-10.
var (
	monday    = caltime.Date{Year: 2024, Month: 6, Day: 10}
	tuesday   = caltime.Date{Year: 2024, Month: 6, Day: 11}
	saturday  = caltime.Date{Year: 2024, Month: 6, Day: 15}
	sundayDay = caltime.Date{Year: 2024, Month: 6, Day: 16}
)

func TestLayoutBucketsByWeekday(t *testing.T) {
	g := Layout([]ics.Event{
		mkEvent("tue", tuesday, caltime.Clock{Hour: 9, Minute: 30}, caltime.Clock{Hour: 11, Minute: 0}),
		mkEvent("mon2", monday, caltime.Clock{Hour: 9, Minute: 30}, caltime.Clock{Hour: 11, Minute: 0}),
		mkEvent("mon1", monday, caltime.Clock{Hour: 7, Minute: 45}, caltime.Clock{Hour: 8, Minute: 30}),
	}, DefaultWindow)

	require.Len(t, g.Days[0], 2)
	assert.Equal(t, "mon1", g.Days[0][0].Event.ID, "buckets are sorted by start time")
	assert.Equal(t, "mon2", g.Days[0][1].Event.ID)
	require.Len(t, g.Days[1], 1)
	assert.Equal(t, "tue", g.Days[1][0].Event.ID)
	for day := 2; day < Weekdays; day++ {
		assert.Empty(t, g.Days[day])
	}
}

func TestLayoutDropsWeekend(t *testing.T) {
	g := Layout([]ics.Event{
		mkEvent("sat", saturday, caltime.Clock{Hour: 10, Minute: 0}, caltime.Clock{Hour: 11, Minute: 0}),
		mkEvent("sun", sundayDay, caltime.Clock{Hour: 10, Minute: 0}, caltime.Clock{Hour: 11, Minute: 0}),
	}, DefaultWindow)
	for day := 0; day < Weekdays; day++ {
		assert.Empty(t, g.Days[day])
	}
}

func TestLayoutGeometry(t *testing.T) {
	// 07:45-09:30 with a 07:00 window top: rows 3..9, i.e. offset 3, 7
	// quarter hours tall.
	g := Layout([]ics.Event{
		mkEvent("a", monday, caltime.Clock{Hour: 7, Minute: 45}, caltime.Clock{Hour: 9, Minute: 30}),
	}, DefaultWindow)

	cell, ok := g.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, 3, cell.Row)
	assert.Equal(t, 7, cell.Height)
	assert.False(t, cell.Clipped)
}

func TestLayoutClampsAtWindowTop(t *testing.T) {
	// Starts half an hour before the window: the cell is pinned to row 0
	// with its height reduced and marked clipped.
	g := Layout([]ics.Event{
		mkEvent("early", monday, caltime.Clock{Hour: 6, Minute: 30}, caltime.Clock{Hour: 8, Minute: 0}),
	}, DefaultWindow)

	cell, ok := g.Cell(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, cell.Row)
	assert.Equal(t, 4, cell.Height, "two of six quarters are cut off")
	assert.True(t, cell.Clipped)
}

func TestLayoutClampsAtWindowBottom(t *testing.T) {
	g := Layout([]ics.Event{
		mkEvent("late", monday, caltime.Clock{Hour: 19, Minute: 30}, caltime.Clock{Hour: 21, Minute: 0}),
	}, DefaultWindow)

	cell, ok := g.Cell(0, 0)
	require.True(t, ok)
	assert.True(t, cell.Clipped)
	assert.Equal(t, DefaultWindow.Rows(), cell.Row+cell.Height)
}

func TestLayoutKeepsSubQuarterOverlapAtTop(t *testing.T) {
	// Ends ten minutes into the window: less than one full quarter visible,
	// but still visible. The bottom edge rounds up to row 1, giving a
	// one-row cell pinned at the top.
	g := Layout([]ics.Event{
		mkEvent("sliver", monday, caltime.Clock{Hour: 6, Minute: 55}, caltime.Clock{Hour: 7, Minute: 10}),
	}, DefaultWindow)

	cell, ok := g.Cell(0, 0)
	require.True(t, ok, "an event intersecting the window must not vanish")
	assert.Equal(t, 0, cell.Row)
	assert.Equal(t, 1, cell.Height)
}

func TestLayoutOmitsEventEndingAtWindowTop(t *testing.T) {
	g := Layout([]ics.Event{
		mkEvent("flush", monday, caltime.Clock{Hour: 6, Minute: 0}, caltime.Clock{Hour: 7, Minute: 0}),
	}, DefaultWindow)
	assert.Empty(t, g.Days[0], "ending exactly at the window top is not an overlap")
}

func TestLayoutOmitsEventsOutsideWindow(t *testing.T) {
	g := Layout([]ics.Event{
		mkEvent("dawn", monday, caltime.Clock{Hour: 5, Minute: 0}, caltime.Clock{Hour: 6, Minute: 0}),
		mkEvent("night", monday, caltime.Clock{Hour: 21, Minute: 0}, caltime.Clock{Hour: 22, Minute: 0}),
	}, DefaultWindow)
	assert.Empty(t, g.Days[0])
}

func TestSelection(t *testing.T) {
	g := Layout([]ics.Event{
		mkEvent("a", monday, caltime.Clock{Hour: 7, Minute: 45}, caltime.Clock{Hour: 8, Minute: 30}),
	}, DefaultWindow)

	assert.False(t, NoSelection().Valid(g))
	assert.True(t, Selection{Day: 0, Index: 0}.Valid(g))
	assert.False(t, Selection{Day: 0, Index: 1}.Valid(g))
	assert.False(t, Selection{Day: 5, Index: 0}.Valid(g))
}

func TestWindowRows(t *testing.T) {
	assert.Equal(t, 52, DefaultWindow.Rows(), "07:00-20:00 is 13 hours of quarters")
}
