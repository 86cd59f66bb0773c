package ics

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Scanner splits line-oriented calendar text into (key, value) pairs. A line
// is split at its first ':'; everything after it, embedded colons included,
// is the value. Trailing CR is stripped so CRLF input works unchanged.
//
// Scan advances one line at a time and returns false only at EOF or on a read
// error (see Err). A line with no delimiter or an empty key is reported
// through LineErr for that line instead of stopping the scan, so callers can
// skip the surrounding block and keep going.
type Scanner struct {
	sc      *bufio.Scanner
	line    int
	key     string
	value   string
	lineErr error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Scan advances to the next line. It returns false when the input is
// exhausted or unreadable.
func (s *Scanner) Scan() bool {
	if !s.sc.Scan() {
		return false
	}
	s.line++
	s.key, s.value, s.lineErr = "", "", nil

	raw := strings.TrimSuffix(s.sc.Text(), "\r")
	key, value, found := strings.Cut(raw, ":")
	if !found {
		s.lineErr = fmt.Errorf("line %d: no delimiter in %q: %w", s.line, raw, ErrMalformedLine)
		return true
	}
	if key == "" {
		s.lineErr = fmt.Errorf("line %d: empty key in %q: %w", s.line, raw, ErrMalformedLine)
		return true
	}
	s.key, s.value = key, value
	return true
}

// Key returns the key of the current line. Valid only when LineErr is nil.
func (s *Scanner) Key() string { return s.key }

// Value returns the value of the current line, with embedded colons intact.
func (s *Scanner) Value() string { return s.value }

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int { return s.line }

// LineErr reports whether the current line was malformed. It wraps
// ErrMalformedLine and resets on the next Scan.
func (s *Scanner) LineErr() error { return s.lineErr }

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error { return s.sc.Err() }
