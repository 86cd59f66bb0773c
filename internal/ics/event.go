package ics

import (
	"fmt"
	"strings"

	"github.com/ganajtur0/neptunics/internal/caltime"
)

// Event is one parsed VEVENT. It is built once during parsing and never
// mutated afterwards.
type Event struct {
	// ID identifies the event across exports. It is the course code when the
	// summary carried one, otherwise the raw UID value. Identity is
	// independent of the timestamps.
	ID string

	// Name is the course name from a composite summary, or the verbatim
	// summary when it was a plain one.
	Name string

	// Code is the Neptun course code, empty for plain summaries.
	Code string

	// Teachers lists the instructors from a composite summary.
	Teachers []string

	Location string

	Start caltime.Moment
	End   caltime.Moment
}

// Same reports whether e and o describe the same entity, regardless of when
// either occurrence takes place.
func (e Event) Same(o Event) bool { return e.ID == o.ID }

// TimeRange formats the event's start and end clocks, e.g. "07:45 - 09:30".
func (e Event) TimeRange() string {
	return fmt.Sprintf("%s - %s", e.Start.Clock, e.End.Clock)
}

// Summary decomposition. Composite (Neptun-style) summaries look like
//
//	NAME ( - CODE) - TEACHER1;TEACHER2 - <trailing segment>
//
// and are taken apart on the literal separators below. A summary without the
// opening separator is treated as plain and kept verbatim.
const (
	summarySepName     = " ( - "
	summarySepCode     = ") - "
	summarySepTrailing = " - "
	summarySepTeachers = ";"
)

// summaryTrailer is the boilerplate suffix some exports append to an
// ICS-escaped summary. trimTrailer strips it; nothing else ever slices the
// summary by position.
const summaryTrailer = `\, Neptun:`

// trimTrailer removes the boilerplate trailer from a raw summary value when
// present.
func trimTrailer(s string) string {
	return strings.TrimSuffix(s, summaryTrailer)
}

// summaryFields holds the parts of a decomposed composite summary.
type summaryFields struct {
	name     string
	code     string
	teachers []string
}

// decomposeSummary splits a composite summary into its fields. Any missing
// separator yields ErrMalformedSummary.
func decomposeSummary(raw string) (summaryFields, error) {
	name, rest, found := strings.Cut(raw, summarySepName)
	if !found {
		return summaryFields{}, fmt.Errorf("summary %q: missing %q: %w", raw, summarySepName, ErrMalformedSummary)
	}
	code, rest, found := strings.Cut(rest, summarySepCode)
	if !found {
		return summaryFields{}, fmt.Errorf("summary %q: missing %q: %w", raw, summarySepCode, ErrMalformedSummary)
	}
	teacherSeg, _, _ := strings.Cut(rest, summarySepTrailing)
	if teacherSeg == "" {
		return summaryFields{}, fmt.Errorf("summary %q: empty teacher segment: %w", raw, ErrMalformedSummary)
	}
	return summaryFields{
		name:     name,
		code:     code,
		teachers: strings.Split(teacherSeg, summarySepTeachers),
	}, nil
}

// parseMoment parses the fixed textual timestamp layout YYYYMMDDTHHMM
// (characters past index 13, such as seconds or a trailing Z, are ignored)
// and applies offsetMinutes with full carry into the date. Every slice is
// validated; a short value, a missing 'T', or a non-numeric or out-of-range
// component yields ErrInvalidDateLiteral.
func parseMoment(v string, offsetMinutes int) (caltime.Moment, error) {
	if len(v) < 13 {
		return caltime.Moment{}, fmt.Errorf("timestamp %q: too short: %w", v, ErrInvalidDateLiteral)
	}
	if v[8] != 'T' {
		return caltime.Moment{}, fmt.Errorf("timestamp %q: expected 'T' separator: %w", v, ErrInvalidDateLiteral)
	}
	year, err := numericField(v, "year", 0, 4, 1, 9999)
	if err != nil {
		return caltime.Moment{}, err
	}
	month, err := numericField(v, "month", 4, 6, 1, 12)
	if err != nil {
		return caltime.Moment{}, err
	}
	day, err := numericField(v, "day", 6, 8, 1, 31)
	if err != nil {
		return caltime.Moment{}, err
	}
	hour, err := numericField(v, "hour", 9, 11, 0, 23)
	if err != nil {
		return caltime.Moment{}, err
	}
	min, err := numericField(v, "minute", 11, 13, 0, 59)
	if err != nil {
		return caltime.Moment{}, err
	}
	m := caltime.Moment{
		Date:  caltime.Date{Year: year, Month: month, Day: day},
		Clock: caltime.Clock{Hour: hour, Minute: min},
	}
	return m.AddMinutes(offsetMinutes), nil
}

// numericField parses v[from:to] as a decimal integer within [min, max].
func numericField(v, name string, from, to, min, max int) (int, error) {
	n := 0
	for _, c := range []byte(v[from:to]) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("timestamp %q: non-numeric %s: %w", v, name, ErrInvalidDateLiteral)
		}
		n = n*10 + int(c-'0')
	}
	if n < min || n > max {
		return 0, fmt.Errorf("timestamp %q: %s %d out of range: %w", v, name, n, ErrInvalidDateLiteral)
	}
	return n, nil
}

// builder accumulates field values for one open VEVENT block.
type builder struct {
	offsetMinutes int

	uid      string
	location string
	summary  string
	start    caltime.Moment
	end      caltime.Moment
	hasStart bool
	hasEnd   bool
}

func newBuilder(offsetMinutes int) *builder {
	return &builder{offsetMinutes: offsetMinutes}
}

// set records one field value. Unrecognized keys are ignored without error.
func (b *builder) set(key, value string) error {
	switch key {
	case "DTSTART":
		m, err := parseMoment(value, b.offsetMinutes)
		if err != nil {
			return err
		}
		b.start, b.hasStart = m, true
	case "DTEND":
		m, err := parseMoment(value, b.offsetMinutes)
		if err != nil {
			return err
		}
		b.end, b.hasEnd = m, true
	case "LOCATION":
		b.location = value
	case "SUMMARY":
		b.summary = trimTrailer(value)
	case "UID":
		b.uid = value
	}
	return nil
}

// build emits the event for a closed block. Both timestamps are required;
// everything else stays as populated. A composite summary must decompose
// cleanly, a plain one is kept whole.
func (b *builder) build() (Event, error) {
	if !b.hasStart {
		return Event{}, fmt.Errorf("DTSTART: %w", ErrMissingField)
	}
	if !b.hasEnd {
		return Event{}, fmt.Errorf("DTEND: %w", ErrMissingField)
	}
	ev := Event{
		ID:       b.uid,
		Name:     b.summary,
		Location: b.location,
		Start:    b.start,
		End:      b.end,
	}
	if strings.Contains(b.summary, summarySepName) {
		f, err := decomposeSummary(b.summary)
		if err != nil {
			return Event{}, err
		}
		ev.Name, ev.Code, ev.Teachers = f.name, f.code, f.teachers
		ev.ID = f.code
	}
	return ev, nil
}
