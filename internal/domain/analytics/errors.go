package analytics

import "errors"

var (
	ErrInvalidDateRange = errors.New("start and end dates must be YYYY-MM-DD with start <= end")
)
