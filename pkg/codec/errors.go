package codec

import "errors"

// Decode errors. All of them are terminal: a file that trips any of these is
// never partially decoded.
var (
	ErrTruncatedInput       = errors.New("truncated input")
	ErrUnsupportedVersion   = errors.New("unsupported version")
	ErrMalformedRecordCount = errors.New("malformed record count")
	ErrTrailingData         = errors.New("trailing data after last record")
	ErrDuplicateID          = errors.New("duplicate achievement id")
)

// Edit errors.
var (
	// ErrNotFound is returned by Delete when no record has the requested id.
	// Deleting something absent is an error rather than a no-op so that a
	// typo'd id never silently produces an unmodified file.
	ErrNotFound = errors.New("achievement not found")
)
