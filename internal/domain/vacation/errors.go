package vacation

import "errors"

// Vacation domain errors
var (
	ErrEntryNotFound    = errors.New("vacation entry not found")
	ErrHoursOutOfRange  = errors.New("vacation hours must be greater than 0 and at most 24")
	ErrInvalidType      = errors.New("invalid vacation type")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrDuplicateForDate = errors.New("employee already has a vacation entry for this date")
)
