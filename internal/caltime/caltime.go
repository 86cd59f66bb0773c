// Package caltime implements the calendrical arithmetic the viewer is built
// on: plain (year, month, day) dates with a derived Monday-based weekday,
// wall-clock (hour, minute) values, day stepping with proper month/year
// rollover, and ISO-week bounds.
//
// Dates are proleptic Gregorian. The weekday is computed from the date with
// Sakamoto's congruence rather than looked up from the standard library, so a
// Date never needs a time.Time behind it; time.Now is used only as the
// wall-clock source for Today and Now.
package caltime

import (
	"fmt"
	"time"
)

// Weekday indices, 0 = Monday .. 6 = Sunday.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// weekdayNames holds the Hungarian weekday names shown in the UI.
var weekdayNames = [7]string{
	"Hétfő", "Kedd", "Szerda", "Csütörtök", "Péntek", "Szombat", "Vasárnap",
}

// WeekdayName returns the Hungarian name for a weekday index, or the empty
// string for an out-of-range index.
func WeekdayName(n int) string {
	if n < 0 || n > 6 {
		return ""
	}
	return weekdayNames[n]
}

// monthTable is the per-month offset table of Sakamoto's congruence.
var monthTable = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// Date is a (year, month, day) triple in the proleptic Gregorian calendar.
// Month and Day are 1-based.
type Date struct {
	Year  int
	Month int
	Day   int
}

// MinDate and MaxDate bound the representable range. Week bounds are clamped
// here instead of wrapping.
var (
	MinDate = Date{Year: 1, Month: 1, Day: 1}
	MaxDate = Date{Year: 9999, Month: 12, Day: 31}
)

// Weekday computes the day of week for d, 0 = Monday .. 6 = Sunday, using
// (y' + y'/4 - y'/100 + y'/400 + T[m-1] + d + 6) mod 7 with y' = year-1 for
// January and February.
func (d Date) Weekday() int {
	y := d.Year
	if d.Month < 3 {
		y--
	}
	return (y + y/4 - y/100 + y/400 + monthTable[d.Month-1] + d.Day + 6) % 7
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	}
	return 0
}

// Next returns the calendar day after d, rolling over month and year
// boundaries.
func (d Date) Next() Date {
	if d.Day < daysInMonth(d.Year, d.Month) {
		d.Day++
		return d
	}
	d.Day = 1
	if d.Month < 12 {
		d.Month++
		return d
	}
	d.Month = 1
	d.Year++
	return d
}

// Prev returns the calendar day before d, rolling over month and year
// boundaries.
func (d Date) Prev() Date {
	if d.Day > 1 {
		d.Day--
		return d
	}
	if d.Month > 1 {
		d.Month--
	} else {
		d.Month = 12
		d.Year--
	}
	d.Day = daysInMonth(d.Year, d.Month)
	return d
}

// Compare orders dates chronologically: -1 if d < o, 0 if equal, 1 if d > o.
func (d Date) Compare(o Date) int {
	a := d.Year*10000 + d.Month*100 + d.Day
	b := o.Year*10000 + o.Month*100 + o.Day
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

func (d Date) String() string {
	return fmt.Sprintf("%d.%02d.%02d.", d.Year, d.Month, d.Day)
}

// WeekBounds returns the Monday and Sunday of the ISO week containing d,
// clamped to [MinDate, MaxDate] when the week would leave the representable
// range.
func WeekBounds(d Date) (monday, sunday Date) {
	monday = d
	for i := d.Weekday(); i > 0; i-- {
		if monday == MinDate {
			break
		}
		monday = monday.Prev()
	}
	sunday = d
	for i := d.Weekday(); i < 6; i++ {
		if sunday == MaxDate {
			break
		}
		sunday = sunday.Next()
	}
	return monday, sunday
}

// Clock is a wall-clock (hour, minute) pair, ordered by minutes since
// midnight.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the minutes elapsed since midnight.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

// Before reports whether c is strictly earlier in the day than o.
func (c Clock) Before(o Clock) bool { return c.Minutes() < o.Minutes() }

// After reports whether c is strictly later in the day than o.
func (c Clock) After(o Clock) bool { return c.Minutes() > o.Minutes() }

// AddMinutes adds delta minutes to c, carrying into hours. The returned day
// count is how many calendar days the result rolled over (negative delta may
// roll backwards).
func (c Clock) AddMinutes(delta int) (Clock, int) {
	total := c.Minutes() + delta
	days := 0
	for total < 0 {
		total += 24 * 60
		days--
	}
	days += total / (24 * 60)
	total %= 24 * 60
	return Clock{Hour: total / 60, Minute: total % 60}, days
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Moment is a Date plus a Clock, ordered chronologically.
type Moment struct {
	Date  Date
	Clock Clock
}

// Compare orders moments by date, then time of day.
func (m Moment) Compare(o Moment) int {
	if c := m.Date.Compare(o.Date); c != 0 {
		return c
	}
	a, b := m.Clock.Minutes(), o.Clock.Minutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether m is strictly earlier than o.
func (m Moment) Before(o Moment) bool { return m.Compare(o) < 0 }

func (m Moment) String() string {
	return fmt.Sprintf("%s, %s %s", WeekdayName(m.Date.Weekday()), m.Date, m.Clock)
}

// AddMinutes shifts the moment by delta minutes, stepping the date when the
// clock rolls over midnight in either direction.
func (m Moment) AddMinutes(delta int) Moment {
	clock, days := m.Clock.AddMinutes(delta)
	date := m.Date
	for ; days > 0; days-- {
		date = date.Next()
	}
	for ; days < 0; days++ {
		date = date.Prev()
	}
	return Moment{Date: date, Clock: clock}
}

// Today resolves the current calendar day from the wall clock. It is
// re-resolved on every call; callers that want a stable cursor keep their own
// copy.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// Now returns the current wall-clock time of day.
func Now() Clock {
	now := time.Now()
	return Clock{Hour: now.Hour(), Minute: now.Minute()}
}
