package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/ics"
	"github.com/ganajtur0/neptunics/internal/index"
	"github.com/ganajtur0/neptunics/internal/timetable"
)

func newTestUI(t *testing.T, events []ics.Event) (*UI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	u, err := NewWithScreen(sim, index.New(events), timetable.DefaultWindow)
	require.NoError(t, err)
	t.Cleanup(u.Close)
	return u, sim
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// screenRow collects the runes of one terminal row into a string.
func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		c := cells[y*width+x]
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
	}
	return b.String()
}

func TestDayViewStepsByDay(t *testing.T) {
	u, _ := newTestUI(t, nil)
	u.nav.Date = caltime.Date{Year: 2024, Month: 1, Day: 31}
	u.requery()

	u.handleKey(keyRune('l'))
	assert.Equal(t, caltime.Date{Year: 2024, Month: 2, Day: 1}, u.nav.Date)
	u.handleKey(keyRune('h'))
	assert.Equal(t, caltime.Date{Year: 2024, Month: 1, Day: 31}, u.nav.Date)
}

func TestWeekViewPagesByWholeWeeks(t *testing.T) {
	u, _ := newTestUI(t, nil)
	u.mode = weekView
	// Wednesday; its week is Mon 2024-01-29 .. Sun 2024-02-04.
	u.nav.Date = caltime.Date{Year: 2024, Month: 1, Day: 31}
	u.requery()

	u.handleKey(keyRune('l'))
	assert.Equal(t, caltime.Date{Year: 2024, Month: 2, Day: 7}, u.nav.Date,
		"one keypress moves a full week, not a single column")
	monday, _ := caltime.WeekBounds(u.nav.Date)
	assert.Equal(t, caltime.Date{Year: 2024, Month: 2, Day: 5}, monday,
		"the grid shows the next week immediately")

	u.handleKey(keyRune('h'))
	assert.Equal(t, caltime.Date{Year: 2024, Month: 1, Day: 31}, u.nav.Date)
}

func TestWeekViewMarksOffGridSelection(t *testing.T) {
	u, sim := newTestUI(t, nil)
	u.mode = weekView
	u.nav.Date = caltime.Date{Year: 2024, Month: 6, Day: 15} // Saturday
	u.requery()
	u.draw()
	assert.Contains(t, screenRow(sim, 1), "Szombat 2024.06.15. is not on the grid")

	u.nav.Date = caltime.Date{Year: 2024, Month: 6, Day: 10} // Monday
	u.requery()
	u.draw()
	assert.NotContains(t, screenRow(sim, 1), "not on the grid")
}
