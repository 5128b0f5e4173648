package punch

import (
	"time"
)

// PunchType limits a punch to the two legal kinds.
type PunchType string

const (
	TypeClockIn  PunchType = "clock_in"
	TypeClockOut PunchType = "clock_out"
)

// PunchEvent is a single clock-in or clock-out record. Events are
// append-only: admins may correct them through the timeadmin service, but
// normal punch traffic never mutates history.
type PunchEvent struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	DealershipID string    `json:"dealership_id"`
	Timestamp    time.Time `json:"timestamp"`
	PunchType    PunchType `json:"punch_type"`

	// Nil for admin-created and auto-generated punches.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Set when an admin (or the system) created or modified the punch.
	AdminNotes      *string `json:"admin_notes,omitempty"`
	AdminModifierID *string `json:"admin_modifier_id,omitempty"`

	// Safety compliance fields, required on employee-facing clock-outs only.
	InjuredAtWork   *bool   `json:"injured_at_work,omitempty"`
	SafetySignature *string `json:"safety_signature,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsClockIn reports whether the event opens a shift.
func (p PunchEvent) IsClockIn() bool {
	return p.PunchType == TypeClockIn
}
