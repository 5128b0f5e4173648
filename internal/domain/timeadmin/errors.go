package timeadmin

import "errors"

// Admin correction errors
var (
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM or HH:MM:SS format")
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrReasonRequired    = errors.New("a reason is required for admin time changes")
	ErrNotClockedIn      = errors.New("employee is not currently clocked in")
)
