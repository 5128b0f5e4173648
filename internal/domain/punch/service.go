package punch

import (
	"context"
)

// PunchService defines business logic for punch recording and the Shift
// Guard safety net.
type PunchService interface {
	// RecordPunch validates geofence membership and punch sequencing, then
	// persists the new event. A double clock-in auto-closes the previous
	// shift instead of failing; the result carries the synthetic clock-out.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchResult, error)

	// Status reports whether the employee is currently clocked in, based on
	// their single most recent punch.
	Status(ctx context.Context, employeeID string) (StatusResponse, error)

	// RecentPunches returns the employee's newest punch events.
	RecentPunches(ctx context.Context, employeeID string, limit int) ([]PunchEvent, error)

	// SweepOpenShifts force-closes shifts that have been open for at least
	// thresholdHours, writing the synthetic clock-out at exactly
	// clockIn + threshold. Per-employee failures do not abort the sweep.
	SweepOpenShifts(ctx context.Context, thresholdHours float64) (SweepResult, error)
}
