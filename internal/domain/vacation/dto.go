package vacation

import (
	"time"

	"github.com/detailops/timeclock-backend/internal/pkg/validator"
)

// GrantRequest creates a vacation entry for one employee on one day.
type GrantRequest struct {
	EmployeeID   string  `json:"employee_id"`
	DealershipID string  `json:"dealership_id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	Hours        float64 `json:"hours"`
	VacationType string  `json:"vacation_type"`
	AdminID      string  `json:"-"`
	Notes        *string `json:"notes"`
}

// Validate checks the grant against the business limits: positive hours up
// to one full day, a known vacation type, and a parseable date.
func (r GrantRequest) Validate() (time.Time, error) {
	if r.Hours <= 0 || r.Hours > 24 {
		return time.Time{}, ErrHoursOutOfRange
	}
	if !isValidType(r.VacationType) {
		return time.Time{}, ErrInvalidType
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// UpdateRequest edits an existing entry. Nil fields are left unchanged.
type UpdateRequest struct {
	ID           string   `json:"-"`
	Hours        *float64 `json:"hours"`
	VacationType *string  `json:"vacation_type"`
	Notes        *string  `json:"notes"`
	AdminID      string   `json:"-"`
}

func (r UpdateRequest) Validate() error {
	if r.Hours != nil && (*r.Hours <= 0 || *r.Hours > 24) {
		return ErrHoursOutOfRange
	}
	if r.VacationType != nil && !isValidType(*r.VacationType) {
		return ErrInvalidType
	}
	return nil
}

func isValidType(s string) bool {
	for _, t := range ValidTypes {
		if s == string(t) {
			return true
		}
	}
	return false
}

// EntryResponse is the wire form of a vacation entry.
type EntryResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	DealershipID     string  `json:"dealership_id"`
	Date             string  `json:"date"`
	Hours            float64 `json:"hours"`
	VacationType     string  `json:"vacation_type"`
	GrantedByAdminID string  `json:"granted_by_admin_id"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
}
