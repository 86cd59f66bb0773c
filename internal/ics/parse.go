package ics

import (
	"io"
	"os"

	appLog "github.com/ganajtur0/neptunics/internal/log"
)

// DefaultUTCOffsetHours is the normalization the Neptun export bakes into its
// timestamps: values are two hours behind the local wall clock. It is a named
// constant here and a config knob (`utc_offset_hours`) for deployments where
// the assumption does not hold.
const DefaultUTCOffsetHours = 2

// Options controls parsing.
type Options struct {
	// UTCOffsetMinutes is added to every parsed timestamp, carrying into the
	// date when it crosses midnight.
	UTCOffsetMinutes int
}

// DefaultOptions returns Options with the default timestamp offset.
func DefaultOptions() Options {
	return Options{UTCOffsetMinutes: DefaultUTCOffsetHours * 60}
}

// Stats summarizes one parse run.
type Stats struct {
	// Parsed is the number of events emitted.
	Parsed int
	// Skipped is the number of blocks dropped for malformed lines, bad
	// field values, or a missing END.
	Skipped int
}

// ParseFile reads and parses the calendar file at path. A failure to open or
// read the file is returned as-is; it is the only error that aborts a run.
func ParseFile(path string, opts Options) ([]Event, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse scans r for VEVENT blocks and builds one Event per well-formed block.
// A malformed block is logged, counted in Stats.Skipped, and skipped; parsing
// always continues with the next block. Lines outside a block are ignored
// except for BEGIN:VEVENT detection.
func Parse(r io.Reader, opts Options) ([]Event, Stats, error) {
	sc := NewScanner(r)
	var (
		events []Event
		stats  Stats
		b      *builder
	)

	for sc.Scan() {
		if lerr := sc.LineErr(); lerr != nil {
			// A malformed line taints the open block but nothing else.
			if b != nil {
				appLog.Error("skipping event block", lerr, "line", sc.Line())
				b = nil
				stats.Skipped++
			}
			continue
		}

		key, value := sc.Key(), sc.Value()
		switch {
		case key == "BEGIN" && value == "VEVENT":
			if b != nil {
				// Previous block never closed.
				appLog.Error("skipping event block", ErrMissingField, "line", sc.Line(), "reason", "unterminated block")
				stats.Skipped++
			}
			b = newBuilder(opts.UTCOffsetMinutes)
		case key == "END":
			if b == nil {
				continue
			}
			ev, err := b.build()
			b = nil
			if err != nil {
				appLog.Error("skipping event block", err, "line", sc.Line())
				stats.Skipped++
				continue
			}
			events = append(events, ev)
			stats.Parsed++
		default:
			if b == nil {
				continue
			}
			if err := b.set(key, value); err != nil {
				appLog.Error("skipping event block", err, "line", sc.Line())
				b = nil
				stats.Skipped++
			}
		}
	}
	if b != nil {
		appLog.Error("skipping event block", ErrMissingField, "reason", "EOF before END")
		stats.Skipped++
	}
	if err := sc.Err(); err != nil {
		return events, stats, err
	}

	appLog.Info("calendar parsed", "events", stats.Parsed, "skipped", stats.Skipped)
	return events, stats, nil
}
