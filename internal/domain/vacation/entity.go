package vacation

import "time"

// VacationType enumerates the kinds of paid time off.
type VacationType string

const (
	TypeVacation    VacationType = "vacation"
	TypeSickLeave   VacationType = "sick_leave"
	TypePersonal    VacationType = "personal_time"
	TypeBereavement VacationType = "bereavement"
	TypeJuryDuty    VacationType = "jury_duty"
	TypeHoliday     VacationType = "holiday"
)

// ValidTypes lists every accepted vacation type string.
var ValidTypes = []VacationType{
	TypeVacation, TypeSickLeave, TypePersonal,
	TypeBereavement, TypeJuryDuty, TypeHoliday,
}

// Entry is one granted block of vacation hours on a single calendar day.
// Vacation pays straight-time and never counts toward overtime.
type Entry struct {
	ID               string
	EmployeeID       string
	DealershipID     string
	Date             time.Time // calendar day, midnight UTC
	Hours            float64
	VacationType     VacationType
	GrantedByAdminID string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
