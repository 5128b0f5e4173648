package punch

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/detailops/timeclock-backend/internal/pkg/validator"
)

// RecordPunchRequest carries an employee-facing punch attempt. Dealerships
// are the employee's assigned candidates; the sequencer picks the first one
// whose geofence contains the reported location.
type RecordPunchRequest struct {
	EmployeeID    string    `json:"employee_id"`
	DealershipIDs []string  `json:"dealership_ids"`
	PunchType     PunchType `json:"punch_type"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`

	// Required on clock-out only.
	InjuredAtWork   *bool   `json:"injured_at_work"`
	SafetySignature *string `json:"safety_signature"`
}

// Validate enforces the employee-facing preconditions: a location is always
// required, and clock-outs additionally need the injury flag and a short
// non-blank safety signature.
func (r RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.PunchType != TypeClockIn && r.PunchType != TypeClockOut {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_type",
			Message: "punch_type must be clock_in or clock_out",
		})
	}

	if r.Latitude == nil || r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude are required to punch",
		})
	} else {
		if !validator.IsValidLatitude(*r.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(*r.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if r.PunchType == TypeClockOut {
		if r.InjuredAtWork == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "injured_at_work",
				Message: "injury status is required for clock out",
			})
		}
		if r.SafetySignature == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "safety_signature",
				Message: "safety signature is required for clock out",
			})
		} else if strings.TrimSpace(*r.SafetySignature) == "" ||
			utf8.RuneCountInString(*r.SafetySignature) > 10 {
			// Length counts characters, not bytes.
			errs = append(errs, validator.ValidationError{
				Field:   "safety_signature",
				Message: "safety signature must be 1-10 non-blank characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchResult is the tagged outcome of a successful RecordPunch call.
// AutoClockOut is set when a double clock-in forced the previous shift
// closed; callers surface Message to the UI in that case.
type PunchResult struct {
	Punch        PunchEvent  `json:"punch"`
	AutoClockOut *PunchEvent `json:"auto_clock_out,omitempty"`
	Message      string      `json:"message,omitempty"`
}

// SweepResult summarizes one Shift Guard pass.
type SweepResult struct {
	EmployeesScanned int      `json:"employees_scanned"`
	ShiftsClosed     int      `json:"shifts_closed"`
	Failures         []string `json:"failures,omitempty"`
}

// StatusResponse reports an employee's current clock state.
type StatusResponse struct {
	EmployeeID     string     `json:"employee_id"`
	ClockedIn      bool       `json:"clocked_in"`
	LastPunchAt    *time.Time `json:"last_punch_at,omitempty"`
	OpenShiftStart *time.Time `json:"open_shift_start,omitempty"`
}
