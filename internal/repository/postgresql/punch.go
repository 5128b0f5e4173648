package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

const punchColumns = `id, employee_id, dealership_id, punch_type, timestamp,
	latitude, longitude, admin_notes, admin_modifier_id,
	injured_at_work, safety_signature, created_at, updated_at`

// Create implements punch.PunchRepository.
func (p *punchRepository) Create(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	// Time-ordered IDs keep index locality for the append-heavy punch log.
	id, err := uuid.NewV7()
	if err != nil {
		return punch.PunchEvent{}, fmt.Errorf("failed to generate punch id: %w", err)
	}
	event.ID = id.String()

	query := `
		INSERT INTO punches (
			id, employee_id, dealership_id, punch_type, timestamp,
			latitude, longitude, admin_notes, admin_modifier_id,
			injured_at_work, safety_signature
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.DealershipID,
		event.PunchType,
		event.Timestamp,
		event.Latitude,
		event.Longitude,
		event.AdminNotes,
		event.AdminModifierID,
		event.InjuredAtWork,
		event.SafetySignature,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return punch.PunchEvent{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return event, nil
}

// GetByID implements punch.PunchRepository.
func (p *punchRepository) GetByID(ctx context.Context, id string) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + punchColumns + ` FROM punches WHERE id = $1`

	event, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchEvent{}, punch.ErrPunchNotFound
		}
		return punch.PunchEvent{}, fmt.Errorf("failed to get punch: %w", err)
	}
	return event, nil
}

// GetLatestByEmployee implements punch.PunchRepository.
func (p *punchRepository) GetLatestByEmployee(ctx context.Context, employeeID string) (*punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`

	event, err := scanPunch(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest punch: %w", err)
	}
	return &event, nil
}

// ListByEmployeeRange implements punch.PunchRepository.
func (p *punchRepository) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1
		  AND timestamp BETWEEN $2 AND $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListByEmployeeBefore implements punch.PunchRepository.
func (p *punchRepository) ListByEmployeeBefore(ctx context.Context, employeeID string, before time.Time, limit int) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1
		  AND timestamp < $2
		ORDER BY timestamp DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, employeeID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches before: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListRange implements punch.PunchRepository.
func (p *punchRepository) ListRange(ctx context.Context, start, end time.Time) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE timestamp BETWEEN $1 AND $2
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListRecentByEmployee implements punch.PunchRepository.
func (p *punchRepository) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ActiveEmployeeIDs implements punch.PunchRepository.
func (p *punchRepository) ActiveEmployeeIDs(ctx context.Context, since time.Time) ([]string, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT DISTINCT employee_id
		FROM punches
		WHERE timestamp >= $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update implements punch.PunchRepository.
func (p *punchRepository) Update(ctx context.Context, event punch.PunchEvent) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE punches
		SET dealership_id = $2,
			timestamp = $3,
			admin_notes = $4,
			admin_modifier_id = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		event.ID,
		event.DealershipID,
		event.Timestamp,
		event.AdminNotes,
		event.AdminModifierID,
	)
	if err != nil {
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}
	return nil
}

// Delete implements punch.PunchRepository.
func (p *punchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}
	return nil
}

func scanPunch(row pgx.Row) (punch.PunchEvent, error) {
	var e punch.PunchEvent
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.DealershipID, &e.PunchType, &e.Timestamp,
		&e.Latitude, &e.Longitude, &e.AdminNotes, &e.AdminModifierID,
		&e.InjuredAtWork, &e.SafetySignature, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func collectPunches(rows pgx.Rows) ([]punch.PunchEvent, error) {
	var events []punch.PunchEvent
	for rows.Next() {
		e, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
