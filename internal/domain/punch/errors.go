package punch

import "errors"

// Punch domain errors. Field-shape problems are reported as
// validator.ValidationErrors from RecordPunchRequest.Validate; the
// sentinels here are business outcomes.
var (
	ErrOutsideGeofence = errors.New("you must be within the geofence of an assigned dealership to punch")

	// Sequencing conflicts (409-class)
	ErrDoubleClockOut        = errors.New("cannot clock out twice in a row")
	ErrClockOutBeforeClockIn = errors.New("cannot clock out before clocking in")

	// General errors
	ErrPunchNotFound = errors.New("punch record not found")
)
