package timeadmin

import (
	"context"

	"github.com/detailops/timeclock-backend/internal/domain/audit"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
)

// Service defines admin corrections over the punch log. Every mutation
// emits exactly one audit record.
type Service interface {
	// CreatePair writes a full clock-in/clock-out pair for an employee.
	CreatePair(ctx context.Context, req CreatePairRequest) (PairResponse, error)

	// EditPunch rewrites timestamp and/or dealership on an existing punch.
	EditPunch(ctx context.Context, req EditPunchRequest) (punch.PunchEvent, error)

	// DeletePunch removes a punch from the log.
	DeletePunch(ctx context.Context, req DeletePunchRequest) error

	// StopShift clocks out an employee whose shift is open right now.
	StopShift(ctx context.Context, req StopShiftRequest) (punch.PunchEvent, error)

	// ChangeHistory returns the audit trail for one employee.
	ChangeHistory(ctx context.Context, employeeID string, limit int) ([]audit.TimeChange, error)

	// AutoStopEvents returns recent Shift Guard force-closures.
	AutoStopEvents(ctx context.Context, limit int) ([]audit.TimeChange, error)
}
