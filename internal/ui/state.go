package ui

import "github.com/ganajtur0/neptunics/internal/caltime"

// NavState is the navigation state machine: the selected day plus the
// selected row within that day's event list. Row -1 means nothing selected.
//
// Every transition re-clamps the row against the caller-supplied list length,
// so the selection can never point past the end of the freshly recomputed
// list.
type NavState struct {
	Date caltime.Date
	Row  int
}

// NewNavState starts on the given day with no row selected.
func NewNavState(day caltime.Date) NavState {
	return NavState{Date: day, Row: -1}
}

// NextDay advances the selected day and drops the row selection.
func (s *NavState) NextDay() {
	s.Date = s.Date.Next()
	s.Row = -1
}

// PrevDay steps the selected day back and drops the row selection.
func (s *NavState) PrevDay() {
	s.Date = s.Date.Prev()
	s.Row = -1
}

// NextWeek jumps the selected day seven days forward, landing on the same
// weekday of the next ISO week, and drops the row selection.
func (s *NavState) NextWeek() {
	for i := 0; i < 7; i++ {
		s.Date = s.Date.Next()
	}
	s.Row = -1
}

// PrevWeek jumps the selected day seven days back and drops the row
// selection.
func (s *NavState) PrevWeek() {
	for i := 0; i < 7; i++ {
		s.Date = s.Date.Prev()
	}
	s.Row = -1
}

// JumpToday re-resolves today from the wall clock and drops the row
// selection.
func (s *NavState) JumpToday() {
	s.Date = caltime.Today()
	s.Row = -1
}

// NextRow moves the selection down, wrapping to the top. With no current
// selection the first row is selected; with an empty list nothing happens.
func (s *NavState) NextRow(count int) {
	if count <= 0 {
		s.Row = -1
		return
	}
	if s.Row < 0 {
		s.Row = 0
		return
	}
	s.Row = (s.Row + 1) % count
}

// PrevRow moves the selection up, wrapping to the bottom.
func (s *NavState) PrevRow(count int) {
	if count <= 0 {
		s.Row = -1
		return
	}
	if s.Row < 0 {
		s.Row = count - 1
		return
	}
	s.Row = (s.Row - 1 + count) % count
}

// Clamp forces the row back into range for a list of count events. It is
// applied after every transition and whenever the underlying list changes.
func (s *NavState) Clamp(count int) {
	if count <= 0 || s.Row < 0 {
		s.Row = -1
		return
	}
	if s.Row >= count {
		s.Row = count - 1
	}
}
