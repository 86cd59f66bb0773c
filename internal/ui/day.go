package ui

import (
	"fmt"
	"strings"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/index"
)

// drawDay renders the single-day list: a header with the wall clock and the
// selected day, then one block per event. The ongoing event (today only) is
// shown reversed, the selected row in the selection color.
func (u *UI) drawDay() {
	u.drawString(0, 0, "q: quit  h/l: day  j/k: row  t: today  tab: week", styleDim)
	u.drawString(0, 1, caltime.Now().String(), styleDefault)

	day := u.nav.Date
	title := fmt.Sprintf("%s %s", caltime.WeekdayName(day.Weekday()), day)
	u.drawString(0, 2, title, styleHeader)

	ongoing := -1
	if day == caltime.Today() {
		if i, ok := index.OngoingIndex(u.dayEvents, caltime.Now()); ok {
			ongoing = i
		}
	}

	y := 4
	if len(u.dayEvents) == 0 {
		u.drawString(0, y, "no events on this day", styleDim)
		return
	}
	for i, ev := range u.dayEvents {
		style := styleDefault
		switch {
		case i == u.nav.Row:
			style = styleSelected
		case i == ongoing:
			style = styleOngoing
		}

		u.drawString(0, y, ev.TimeRange(), styleRuler)
		name := ev.Name
		if ev.Code != "" {
			name = fmt.Sprintf("%s (%s)", ev.Name, ev.Code)
		}
		u.drawString(16, y, name, style)
		if ev.Location != "" {
			u.drawString(16, y+1, ev.Location, styleDim)
			y++
		}
		if len(ev.Teachers) > 0 {
			u.drawString(16, y+1, strings.Join(ev.Teachers, "; "), styleDim)
			y++
		}
		y += 2
	}
}
