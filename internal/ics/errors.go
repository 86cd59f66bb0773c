package ics

import "errors"

// Parse failures are typed sentinels so callers can classify what went wrong
// with errors.Is. Each one is wrapped with context (line, field, value) at the
// point of failure.
var (
	// ErrMalformedLine marks a line with no ':' delimiter or an empty key.
	ErrMalformedLine = errors.New("malformed line")

	// ErrMissingField marks a block closed before a required field was set.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidDateLiteral marks a DTSTART/DTEND value that does not match
	// the fixed YYYYMMDDTHHMM layout.
	ErrInvalidDateLiteral = errors.New("invalid date literal")

	// ErrMalformedSummary marks a composite summary missing one of its
	// expected separators.
	ErrMalformedSummary = errors.New("malformed summary")
)
