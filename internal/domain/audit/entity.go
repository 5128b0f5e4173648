package audit

import "time"

// Action is the kind of correction an admin (or the system) performed.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionEdit   Action = "EDIT"
	ActionDelete Action = "DELETE"
)

// SystemAdminID marks corrections generated by the Shift Guard sweep
// rather than a human admin.
const SystemAdminID = "system"

// TimeChange is one append-only audit record of a punch correction.
// Records are never mutated after creation.
type TimeChange struct {
	ID         string `json:"id"`
	AdminID    string `json:"admin_id"`
	EmployeeID string `json:"employee_id"`
	Action     Action `json:"action"`
	Reason     string `json:"reason"`

	// The punch pair touched by the correction, where applicable.
	ClockInID  *string `json:"clock_in_id,omitempty"`
	ClockOutID *string `json:"clock_out_id,omitempty"`

	DealershipID string `json:"dealership_id"`

	// New/current times for CREATE and EDIT.
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Pre-edit values, EDIT only.
	OriginalStartTime    *time.Time `json:"original_start_time,omitempty"`
	OriginalEndTime      *time.Time `json:"original_end_time,omitempty"`
	OriginalDealershipID *string    `json:"original_dealership_id,omitempty"`

	// Calendar day of the affected punch, YYYY-MM-DD.
	PunchDate string `json:"punch_date"`

	CreatedAt time.Time `json:"created_at"`
}
