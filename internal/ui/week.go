package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/timetable"
)

// Week grid geometry on screen: a time ruler on the left, one column per
// workday, one terminal row per quarter hour.
const (
	rulerWidth  = 6
	gridTop     = 2
	rowsPerHour = 60 / timetable.QuarterMinutes
)

// drawWeek renders the Monday–Friday grid for the week containing the
// selected day.
func (u *UI) drawWeek() {
	width, _ := u.screen.Size()
	colWidth := (width - rulerWidth) / timetable.Weekdays
	if colWidth < 4 {
		u.drawString(0, 0, "terminal too narrow for the week view", styleDim)
		return
	}

	monday, _ := caltime.WeekBounds(u.nav.Date)
	today := caltime.Today()

	// Column headers.
	day := monday
	for col := 0; col < timetable.Weekdays; col++ {
		style := styleHeader
		if day == today {
			style = styleToday
		}
		x := rulerWidth + col*colWidth
		header := fmt.Sprintf("%s %d.%02d.", caltime.WeekdayName(col), day.Month, day.Day)
		u.drawString(x, 0, truncate(header, colWidth-1), style)
		day = day.Next()
	}

	// Hour labels down the ruler.
	for row := 0; row < u.window.Rows(); row++ {
		if row%rowsPerHour != 0 {
			continue
		}
		label, _ := u.window.Start.AddMinutes(row * timetable.QuarterMinutes)
		u.drawString(0, gridTop+row, label.String(), styleDim)
	}

	// A weekend selection has no column; say so instead of highlighting
	// nothing silently.
	selDay := u.nav.Date.Weekday()
	if selDay >= timetable.Weekdays {
		note := fmt.Sprintf("%s %s is not on the grid", caltime.WeekdayName(selDay), u.nav.Date)
		u.drawString(rulerWidth, 1, note, styleDim)
	}

	for col := 0; col < timetable.Weekdays; col++ {
		x := rulerWidth + col*colWidth
		for idx, cell := range u.grid.Days[col] {
			style := styleCell
			if col == selDay && idx == u.nav.Row {
				style = styleSelected
			}
			u.drawCell(x, colWidth-1, cell, style)
		}
	}
}

// drawCell paints one event block: a filled rectangle with the course name on
// its first row and the time range below when there is room.
func (u *UI) drawCell(x, width int, cell timetable.Cell, style tcell.Style) {
	for row := 0; row < cell.Height; row++ {
		u.fill(x, gridTop+cell.Row+row, width, ' ', style)
	}
	u.drawString(x, gridTop+cell.Row, truncate(cell.Event.Name, width), style)
	if cell.Height > 1 {
		u.drawString(x, gridTop+cell.Row+1, truncate(cell.Event.TimeRange(), width), style)
	}
	if cell.Height > 2 && cell.Event.Location != "" {
		u.drawString(x, gridTop+cell.Row+2, truncate(cell.Event.Location, width), style)
	}
}
