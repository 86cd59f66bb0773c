// Package timetable maps one week of events onto the Monday–Friday grid: a
// column per weekday and a row per quarter hour of the visible day window.
package timetable

import (
	"sort"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/ics"
)

// Weekdays is the number of grid columns. The grid is a workweek view:
// Saturday and Sunday events are dropped by construction, not an oversight.
const Weekdays = 5

// QuarterMinutes is the vertical granularity of the grid.
const QuarterMinutes = 15

// Window is the visible span of the day, a configuration constant of the
// caller rather than anything derived from the data.
type Window struct {
	Start caltime.Clock
	End   caltime.Clock
}

// DefaultWindow covers the teaching day.
var DefaultWindow = Window{
	Start: caltime.Clock{Hour: 7, Minute: 0},
	End:   caltime.Clock{Hour: 20, Minute: 0},
}

// Rows returns the number of quarter-hour rows the window spans.
func (w Window) Rows() int {
	return (w.End.Minutes() - w.Start.Minutes()) / QuarterMinutes
}

// Cell is one event placed on the grid.
type Cell struct {
	Event ics.Event

	// Row is the top row of the cell, always within [0, Rows).
	Row int
	// Height is the cell's extent in rows, at least 1.
	Height int
	// Clipped is set when the event spilled past the window and was
	// truncated to fit.
	Clipped bool
}

// Grid is the laid-out week. Days[i] holds Monday+i's cells sorted by start
// time; an event's index within its day is its selection coordinate.
type Grid struct {
	Window Window
	Days   [Weekdays][]Cell
}

// Layout buckets weekEvents by weekday and computes each event's vertical
// placement. The input is expected to be one ISO week of events; weekend
// events are discarded, events entirely outside the window are omitted, and
// events reaching past either bound are clamped and marked Clipped.
func Layout(weekEvents []ics.Event, w Window) Grid {
	g := Grid{Window: w}

	var buckets [Weekdays][]ics.Event
	for _, ev := range weekEvents {
		dow := ev.Start.Date.Weekday()
		if dow >= Weekdays {
			continue
		}
		buckets[dow] = append(buckets[dow], ev)
	}

	rows := w.Rows()
	for day, events := range buckets {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Start.Before(events[j].Start)
		})
		for _, ev := range events {
			cell, ok := place(ev, w, rows)
			if !ok {
				continue
			}
			g.Days[day] = append(g.Days[day], cell)
		}
	}
	return g
}

// place computes one event's cell. The bottom edge comes from the event end,
// the height from the start/end distance; clamping at the window bounds
// shortens the cell instead of letting it run off the grid. The bottom edge
// rounds up, so an event overlapping the window top by less than a quarter
// hour still lands on row 0 instead of vanishing.
func place(ev ics.Event, w Window, rows int) (Cell, bool) {
	endMin := ev.End.Clock.Minutes() - w.Start.Minutes()
	if endMin <= 0 {
		// Ends at or before the window top.
		return Cell{}, false
	}
	bottom := (endMin + QuarterMinutes - 1) / QuarterMinutes
	height := (ev.End.Clock.Minutes() - ev.Start.Clock.Minutes()) / QuarterMinutes
	if height < 1 {
		height = 1
	}
	top := bottom - height

	if top >= rows {
		// Entirely below the visible window.
		return Cell{}, false
	}

	clipped := false
	if top < 0 {
		height += top
		top = 0
		clipped = true
	}
	if top+height > rows {
		height = rows - top
		clipped = true
	}
	if height < 1 {
		height = 1
	}
	return Cell{Event: ev, Row: top, Height: height, Clipped: clipped}, true
}

// Cell returns the cell at (day, idx), reporting whether it exists.
func (g Grid) Cell(day, idx int) (Cell, bool) {
	if day < 0 || day >= Weekdays {
		return Cell{}, false
	}
	if idx < 0 || idx >= len(g.Days[day]) {
		return Cell{}, false
	}
	return g.Days[day][idx], true
}

// Selection addresses one cell by (day, index within day). The zero day/index
// of NoSelection are deliberately out of range.
type Selection struct {
	Day   int
	Index int
}

// NoSelection is the default: nothing highlighted.
func NoSelection() Selection { return Selection{Day: -1, Index: -1} }

// Valid reports whether s addresses an existing cell of g.
func (s Selection) Valid(g Grid) bool {
	_, ok := g.Cell(s.Day, s.Index)
	return ok
}
