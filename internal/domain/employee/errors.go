package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// Wage coercion errors. The directory sometimes carries wages as
	// strings or ints; rejecting bad values beats silently paying $0.
	ErrWageMissing    = errors.New("hourly wage is missing")
	ErrWageNotNumeric = errors.New("hourly wage is not numeric")
	ErrWageNegative   = errors.New("hourly wage is negative")
)
