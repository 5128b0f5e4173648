package timeadmin

import (
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/pkg/validator"
)

// CreatePairRequest creates a complete clock-in/clock-out pair on behalf of
// an employee, e.g. when both punches were missed.
type CreatePairRequest struct {
	EmployeeID   string `json:"employee_id"`
	DealershipID string `json:"dealership_id"`
	PunchDate    string `json:"punch_date"` // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM or HH:MM:SS
	EndTime      string `json:"end_time"`
	Reason       string `json:"reason"`
	AdminID      string `json:"-"`
}

// Times resolves the request's date and wall-clock strings into UTC
// instants, validating format and ordering.
func (r CreatePairRequest) Times() (start, end time.Time, err error) {
	if validator.IsEmpty(r.Reason) {
		return start, end, ErrReasonRequired
	}
	day, ok := validator.IsValidDate(r.PunchDate)
	if !ok {
		return start, end, ErrInvalidDateFormat
	}
	start, err = CombineDateTime(day, r.StartTime)
	if err != nil {
		return start, end, err
	}
	end, err = CombineDateTime(day, r.EndTime)
	if err != nil {
		return start, end, err
	}
	// Overnight pair: an end before the start means clock-out fell on the
	// next calendar day.
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end, nil
}

// CombineDateTime merges a calendar day with an HH:MM[:SS] string into a
// UTC instant.
func CombineDateTime(day time.Time, clock string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range []string{"15:04:05", "15:04"} {
		parsed, err = time.Parse(layout, clock)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC), nil
}

// EditPunchRequest rewrites a single punch's timestamp and/or dealership.
type EditPunchRequest struct {
	PunchID      string  `json:"-"`
	Timestamp    *string `json:"timestamp"` // RFC 3339
	DealershipID *string `json:"dealership_id"`
	Reason       string  `json:"reason"`
	AdminID      string  `json:"-"`
}

func (r EditPunchRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return ErrReasonRequired
	}
	if r.Timestamp != nil {
		if _, err := time.Parse(time.RFC3339, *r.Timestamp); err != nil {
			return ErrInvalidTimeFormat
		}
	}
	return nil
}

// DeletePunchRequest removes a punch, with an audit trail.
type DeletePunchRequest struct {
	PunchID string `json:"-"`
	Reason  string `json:"reason"`
	AdminID string `json:"-"`
}

// StopShiftRequest force-closes an employee's open shift at the current time.
type StopShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
	AdminID    string `json:"-"`
}

// PairResponse reports the two punches created by CreatePair.
type PairResponse struct {
	ClockIn  punch.PunchEvent `json:"clock_in"`
	ClockOut punch.PunchEvent `json:"clock_out"`
}
