package analytics

import "context"

// Service defines read-only labor reporting. Nothing here may mutate
// punch history.
type Service interface {
	// TodayStatus reports hours worked so far today and clock state.
	TodayStatus(ctx context.Context, employeeID string) (TodayStatus, error)

	// WeeklySummary reports the current week's hours and pay.
	WeeklySummary(ctx context.Context, employeeID string) (WeeklySummary, error)

	// EmployeeRange reports one employee over [startDate, endDate].
	EmployeeRange(ctx context.Context, employeeID, startDate, endDate string) (EmployeeLabor, error)

	// DealershipRange reports one dealership over [startDate, endDate].
	DealershipRange(ctx context.Context, dealershipID, startDate, endDate string) (DealershipLabor, error)

	// CompanyRange reports every dealership over [startDate, endDate].
	CompanyRange(ctx context.Context, startDate, endDate string) (CompanyLabor, error)
}
