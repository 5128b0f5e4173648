package analytics

import (
	"github.com/detailops/timeclock-backend/internal/domain/shift"
)

// TodayStatus is an employee's "so far today" snapshot. An active shift's
// elapsed time counts as paid hours even though no clock-out exists yet.
type TodayStatus struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	PaidHours   float64 `json:"paid_hours"`
	ClockedIn   bool    `json:"clocked_in"`
	GeneratedAt string  `json:"generated_at"`
}

// WeeklySummary covers the current Monday-to-Sunday week.
type WeeklySummary struct {
	EmployeeID      string  `json:"employee_id"`
	WeekStart       string  `json:"week_start"`
	PaidHours       float64 `json:"paid_hours"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	Pay             float64 `json:"pay"`
	WageUnavailable bool    `json:"wage_unavailable"`
}

// DailyBreakdown splits one calendar day of a week into regular and
// overtime hours. The split depends on cumulative hours earlier in the
// week, so identical days can price differently.
type DailyBreakdown struct {
	Date          string  `json:"date"`
	PaidHours     float64 `json:"paid_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Pay           float64 `json:"pay"`
}

// EmployeeLabor is a full per-employee labor report for a date range.
// WageUnavailable marks directory failures explicitly instead of silently
// zeroing the employee's cost.
type EmployeeLabor struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	WorkedHours   float64 `json:"worked_hours"`
	VacationHours float64 `json:"vacation_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	LaborCost     float64 `json:"labor_cost"`
	VacationCost  float64 `json:"vacation_cost"`
	TotalCost     float64 `json:"total_cost"`

	WageUnavailable bool `json:"wage_unavailable"`
	ClockedIn       bool `json:"clocked_in"`

	Days      []DailyBreakdown `json:"days,omitempty"`
	Shifts    []shift.Shift    `json:"shifts,omitempty"`
	Anomalies []shift.Anomaly  `json:"anomalies,omitempty"`
}

// HourlySpend buckets labor cost by hour of day (0-23). A shift spanning
// several hours contributes an equal fraction to each hour it touches.
type HourlySpend struct {
	Hour      int     `json:"hour"`
	Spend     float64 `json:"spend"`
	Employees int     `json:"employees"`
}

// DealershipLabor aggregates one location over a date range. Employees
// with zero activity in the window are excluded from ActiveEmployees but
// still listed when registered to the dealership.
type DealershipLabor struct {
	DealershipID    string          `json:"dealership_id"`
	Name            string          `json:"name"`
	ActiveEmployees int             `json:"active_employees"`
	TotalHours      float64         `json:"total_hours"`
	VacationHours   float64         `json:"vacation_hours"`
	TotalCost       float64         `json:"total_cost"`
	Employees       []EmployeeLabor `json:"employees"`
	Hourly          []HourlySpend   `json:"hourly_breakdown"`
}

// CompanyLabor rolls every dealership up to company-wide totals.
type CompanyLabor struct {
	TotalHours    float64           `json:"total_hours"`
	VacationHours float64           `json:"vacation_hours"`
	TotalCost     float64           `json:"total_cost"`
	Dealerships   []DealershipLabor `json:"dealerships"`
}
