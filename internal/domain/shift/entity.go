package shift

import (
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/punch"
)

// Shift is a derived clock-in/clock-out pairing. It is never stored;
// every report reconstructs shifts from the punch log.
type Shift struct {
	EmployeeID   string     `json:"employee_id"`
	DealershipID string     `json:"dealership_id"`
	ClockIn      time.Time  `json:"clock_in"`
	ClockOut     *time.Time `json:"clock_out,omitempty"`
	RawHours     float64    `json:"raw_hours"`
	PaidHours    float64    `json:"paid_hours"`
	IsOpen       bool       `json:"is_open"`
}

// AnomalyType classifies a data-quality finding. Anomalies are surfaced
// for admin review; they are never errors.
type AnomalyType string

const (
	AnomalyMissingClockOut AnomalyType = "missing_clock_out"
	AnomalyMissingClockIn  AnomalyType = "missing_clock_in"
	AnomalyLongRunningOpen AnomalyType = "long_running_open_shift"
)

// Anomaly records a sequencing irregularity found while pairing punches.
type Anomaly struct {
	Type          AnomalyType `json:"type"`
	EmployeeID    string      `json:"employee_id"`
	DealershipID  string      `json:"dealership_id"`
	Timestamp     time.Time   `json:"timestamp"`
	DurationHours float64     `json:"duration_hours,omitempty"`
	Detail        string      `json:"detail"`
}

// PairingResult is the output of one pairing pass over a window.
type PairingResult struct {
	Shifts    []Shift   `json:"shifts"`
	Anomalies []Anomaly `json:"anomalies"`
}

// CarryInState captures an employee's on/off-duty status at the start of
// an analysis window, inherited from punches before the boundary.
type CarryInState struct {
	Open         bool
	ClockInAt    time.Time
	DealershipID string
}

// CarryInFromPunches derives carry-in state from an employee's most recent
// punch strictly before the window start. Punches must be ordered newest
// first; only the first element matters.
func CarryInFromPunches(prior []punch.PunchEvent) CarryInState {
	if len(prior) == 0 {
		return CarryInState{}
	}
	last := prior[0]
	if !last.IsClockIn() {
		return CarryInState{}
	}
	return CarryInState{
		Open:         true,
		ClockInAt:    last.Timestamp,
		DealershipID: last.DealershipID,
	}
}
