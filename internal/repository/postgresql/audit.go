package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/detailops/timeclock-backend/internal/domain/audit"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

const auditColumns = `id, admin_id, employee_id, action, reason,
	clock_in_id, clock_out_id, dealership_id,
	start_time, end_time, original_start_time, original_end_time,
	original_dealership_id, punch_date, created_at`

// Create implements audit.Repository.
func (a *auditRepository) Create(ctx context.Context, change audit.TimeChange) (audit.TimeChange, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return audit.TimeChange{}, fmt.Errorf("failed to generate audit id: %w", err)
	}
	change.ID = id.String()

	query := `
		INSERT INTO time_changes (
			id, admin_id, employee_id, action, reason,
			clock_in_id, clock_out_id, dealership_id,
			start_time, end_time, original_start_time, original_end_time,
			original_dealership_id, punch_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		change.ID,
		change.AdminID,
		change.EmployeeID,
		change.Action,
		change.Reason,
		change.ClockInID,
		change.ClockOutID,
		change.DealershipID,
		change.StartTime,
		change.EndTime,
		change.OriginalStartTime,
		change.OriginalEndTime,
		change.OriginalDealershipID,
		change.PunchDate,
	).Scan(&change.CreatedAt)
	if err != nil {
		return audit.TimeChange{}, fmt.Errorf("failed to create audit record: %w", err)
	}

	return change, nil
}

// ListByEmployee implements audit.Repository.
func (a *auditRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]audit.TimeChange, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + auditColumns + `
		FROM time_changes
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	return collectChanges(rows)
}

// ListAutoStops implements audit.Repository.
func (a *auditRepository) ListAutoStops(ctx context.Context, limit int) ([]audit.TimeChange, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + auditColumns + `
		FROM time_changes
		WHERE admin_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, audit.SystemAdminID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto stop records: %w", err)
	}
	defer rows.Close()

	return collectChanges(rows)
}

func collectChanges(rows pgx.Rows) ([]audit.TimeChange, error) {
	var changes []audit.TimeChange
	for rows.Next() {
		var c audit.TimeChange
		err := rows.Scan(
			&c.ID, &c.AdminID, &c.EmployeeID, &c.Action, &c.Reason,
			&c.ClockInID, &c.ClockOutID, &c.DealershipID,
			&c.StartTime, &c.EndTime, &c.OriginalStartTime, &c.OriginalEndTime,
			&c.OriginalDealershipID, &c.PunchDate, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepository{db: db}
}
