// Package ui renders the parsed calendar in the terminal and runs the
// synchronous key loop. Two views exist: a single-day event list and the
// Monday–Friday week grid; Tab switches between them.
//
// The loop is strictly single-threaded: block on the next key event, mutate
// the navigation state, re-query the index, redraw.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ganajtur0/neptunics/internal/caltime"
	"github.com/ganajtur0/neptunics/internal/ics"
	"github.com/ganajtur0/neptunics/internal/index"
	appLog "github.com/ganajtur0/neptunics/internal/log"
	"github.com/ganajtur0/neptunics/internal/timetable"
)

type viewMode int

const (
	dayView viewMode = iota
	weekView
)

// UI owns the terminal screen and the transient drawing state. All event data
// lives in the index; the UI only holds what it is currently showing.
type UI struct {
	screen tcell.Screen
	idx    *index.Index
	window timetable.Window

	nav  NavState
	mode viewMode

	dayEvents []ics.Event
	grid      timetable.Grid
}

// New initializes the terminal screen over the given index.
func New(ix *index.Index, window timetable.Window) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, ix, window)
}

// NewWithScreen initializes the UI on an already-created screen. Tests use it
// with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen, ix *index.Index, window timetable.Window) (*UI, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(styleDefault)

	u := &UI{
		screen: screen,
		idx:    ix,
		window: window,
		nav:    NewNavState(caltime.Today()),
	}
	u.requery()
	return u, nil
}

// Close tears the screen down. Safe to call once after Run returns.
func (u *UI) Close() {
	u.screen.Fini()
}

// Run draws and then blocks on input until a quit key arrives.
func (u *UI) Run() error {
	for {
		u.draw()
		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if quit := u.handleKey(ev); quit {
				appLog.Info("quit requested")
				return nil
			}
		}
	}
}

// handleKey applies one keypress to the navigation state and reports whether
// the loop should end.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return true
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return true

	case ev.Key() == tcell.KeyRight || (ev.Key() == tcell.KeyRune && ev.Rune() == 'l'):
		// The week grid pages by whole weeks, the day list by days.
		if u.mode == weekView {
			u.nav.NextWeek()
		} else {
			u.nav.NextDay()
		}
	case ev.Key() == tcell.KeyLeft || (ev.Key() == tcell.KeyRune && ev.Rune() == 'h'):
		if u.mode == weekView {
			u.nav.PrevWeek()
		} else {
			u.nav.PrevDay()
		}
	case ev.Key() == tcell.KeyDown || (ev.Key() == tcell.KeyRune && ev.Rune() == 'j'):
		u.nav.NextRow(u.rowCount())
	case ev.Key() == tcell.KeyUp || (ev.Key() == tcell.KeyRune && ev.Rune() == 'k'):
		u.nav.PrevRow(u.rowCount())
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 't' || ev.Rune() == ' '):
		u.nav.JumpToday()
	case ev.Key() == tcell.KeyTab || (ev.Key() == tcell.KeyRune && ev.Rune() == 'w'):
		if u.mode == dayView {
			u.mode = weekView
		} else {
			u.mode = dayView
		}
	default:
		return false
	}

	u.requery()
	return false
}

// requery recomputes the query results behind the current view and re-clamps
// the selection against them.
func (u *UI) requery() {
	u.dayEvents = u.idx.EventsOnDay(u.nav.Date)
	u.grid = timetable.Layout(u.idx.EventsInWeek(u.nav.Date), u.window)
	u.nav.Clamp(u.rowCount())
}

// rowCount is the length of the list the row selection runs over: the day's
// events in day view, the selected day's grid column in week view.
func (u *UI) rowCount() int {
	if u.mode == dayView {
		return len(u.dayEvents)
	}
	dow := u.nav.Date.Weekday()
	if dow >= timetable.Weekdays {
		return 0
	}
	return len(u.grid.Days[dow])
}

func (u *UI) draw() {
	u.screen.Clear()
	switch u.mode {
	case dayView:
		u.drawDay()
	case weekView:
		u.drawWeek()
	}
	u.screen.Show()
}

// drawString writes text starting at (x, y), clipped to the screen.
func (u *UI) drawString(x, y int, text string, style tcell.Style) {
	width, height := u.screen.Size()
	if y < 0 || y >= height {
		return
	}
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		u.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// fill paints a horizontal run of cells with a single rune.
func (u *UI) fill(x, y, n int, r rune, style tcell.Style) {
	for i := 0; i < n; i++ {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
