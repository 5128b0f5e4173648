package vacation

import (
	"context"
	"time"
)

// Repository stores vacation entries keyed by employee and date.
type Repository interface {
	// Create persists a new entry and returns it with generated fields.
	Create(ctx context.Context, entry Entry) (Entry, error)

	// GetByID retrieves an entry; returns ErrEntryNotFound when absent.
	GetByID(ctx context.Context, id string) (Entry, error)

	// GetByEmployeeAndDate returns the entry for one employee on one day,
	// or nil when none exists. Used to enforce one entry per day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Entry, error)

	// ListByEmployeeRange returns entries dated within [start, end].
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)

	// ListRange returns all entries dated within [start, end].
	ListRange(ctx context.Context, start, end time.Time) ([]Entry, error)

	// Update rewrites an existing entry.
	Update(ctx context.Context, entry Entry) error

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id string) error
}
