package audit

import (
	"context"
)

// Repository is the write-mostly audit sink for punch corrections.
type Repository interface {
	// Create appends one audit record.
	Create(ctx context.Context, change TimeChange) (TimeChange, error)

	// ListByEmployee returns an employee's audit trail, newest first.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]TimeChange, error)

	// ListAutoStops returns system-generated auto stop records, newest first.
	ListAutoStops(ctx context.Context, limit int) ([]TimeChange, error)
}
