package vacation

import "context"

// Service defines admin-facing vacation management.
type Service interface {
	// Grant creates a vacation entry; rejects a second entry for the same
	// employee and date.
	Grant(ctx context.Context, req GrantRequest) (EntryResponse, error)

	// ListForEmployee returns entries within a YYYY-MM-DD date range.
	ListForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]EntryResponse, error)

	// Update edits an existing entry.
	Update(ctx context.Context, req UpdateRequest) (EntryResponse, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}
