package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for the append-only punch log.
// Range queries return events ordered by timestamp ascending.
type PunchRepository interface {
	// Create persists a new punch event and returns it with generated fields.
	Create(ctx context.Context, event PunchEvent) (PunchEvent, error)

	// GetByID retrieves a punch by ID.
	GetByID(ctx context.Context, id string) (PunchEvent, error)

	// GetLatestByEmployee returns the employee's single most recent punch
	// across all dealerships, or nil if they have never punched.
	GetLatestByEmployee(ctx context.Context, employeeID string) (*PunchEvent, error)

	// ListByEmployeeRange returns an employee's punches in [start, end].
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]PunchEvent, error)

	// ListByEmployeeBefore returns up to limit punches strictly before the
	// given instant, newest first. Used for carry-in state derivation.
	ListByEmployeeBefore(ctx context.Context, employeeID string, before time.Time, limit int) ([]PunchEvent, error)

	// ListRange returns all punches in [start, end] for every employee.
	ListRange(ctx context.Context, start, end time.Time) ([]PunchEvent, error)

	// ListRecentByEmployee returns the newest punches for an employee.
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]PunchEvent, error)

	// ActiveEmployeeIDs returns distinct employee IDs with any punch at or
	// after since.
	ActiveEmployeeIDs(ctx context.Context, since time.Time) ([]string, error)

	// Update rewrites an existing punch. Admin corrections only.
	Update(ctx context.Context, event PunchEvent) error

	// Delete removes a punch by ID. Admin corrections only.
	Delete(ctx context.Context, id string) error
}
