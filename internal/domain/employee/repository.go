package employee

import "context"

// Directory provides read access to the external employee directory.
type Directory interface {
	// GetByID retrieves an employee; returns ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns every registered employee.
	List(ctx context.Context) ([]Employee, error)

	// AssignedDealerships returns the dealership IDs an employee may punch at.
	AssignedDealerships(ctx context.Context, id string) ([]string, error)
}
