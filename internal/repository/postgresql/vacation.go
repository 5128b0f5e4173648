package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/detailops/timeclock-backend/internal/domain/vacation"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
)

type vacationRepository struct {
	db *database.DB
}

const vacationColumns = `id, employee_id, dealership_id, date, hours,
	vacation_type, granted_by_admin_id, notes, created_at, updated_at`

// Create implements vacation.Repository.
func (v *vacationRepository) Create(ctx context.Context, entry vacation.Entry) (vacation.Entry, error) {
	q := GetQuerier(ctx, v.db)

	id, err := uuid.NewV7()
	if err != nil {
		return vacation.Entry{}, fmt.Errorf("failed to generate vacation id: %w", err)
	}
	entry.ID = id.String()

	query := `
		INSERT INTO vacation_times (
			id, employee_id, dealership_id, date, hours,
			vacation_type, granted_by_admin_id, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		entry.ID,
		entry.EmployeeID,
		entry.DealershipID,
		entry.Date,
		entry.Hours,
		entry.VacationType,
		entry.GrantedByAdminID,
		entry.Notes,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return vacation.Entry{}, fmt.Errorf("failed to create vacation entry: %w", err)
	}

	return entry, nil
}

// GetByID implements vacation.Repository.
func (v *vacationRepository) GetByID(ctx context.Context, id string) (vacation.Entry, error) {
	q := GetQuerier(ctx, v.db)

	query := `SELECT ` + vacationColumns + ` FROM vacation_times WHERE id = $1`

	entry, err := scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Entry{}, vacation.ErrEntryNotFound
		}
		return vacation.Entry{}, fmt.Errorf("failed to get vacation entry: %w", err)
	}
	return entry, nil
}

// GetByEmployeeAndDate implements vacation.Repository.
func (v *vacationRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*vacation.Entry, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT ` + vacationColumns + `
		FROM vacation_times
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	entry, err := scanVacation(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vacation entry by date: %w", err)
	}
	return &entry, nil
}

// ListByEmployeeRange implements vacation.Repository.
func (v *vacationRepository) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]vacation.Entry, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT ` + vacationColumns + `
		FROM vacation_times
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation entries: %w", err)
	}
	defer rows.Close()

	return collectVacations(rows)
}

// ListRange implements vacation.Repository.
func (v *vacationRepository) ListRange(ctx context.Context, start, end time.Time) ([]vacation.Entry, error) {
	q := GetQuerier(ctx, v.db)

	query := `
		SELECT ` + vacationColumns + `
		FROM vacation_times
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC, employee_id ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation entries: %w", err)
	}
	defer rows.Close()

	return collectVacations(rows)
}

// Update implements vacation.Repository.
func (v *vacationRepository) Update(ctx context.Context, entry vacation.Entry) error {
	q := GetQuerier(ctx, v.db)

	query := `
		UPDATE vacation_times
		SET hours = $2,
			vacation_type = $3,
			notes = $4,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, entry.ID, entry.Hours, entry.VacationType, entry.Notes)
	if err != nil {
		return fmt.Errorf("failed to update vacation entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrEntryNotFound
	}
	return nil
}

// Delete implements vacation.Repository.
func (v *vacationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, v.db)

	tag, err := q.Exec(ctx, `DELETE FROM vacation_times WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacation entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrEntryNotFound
	}
	return nil
}

func scanVacation(row pgx.Row) (vacation.Entry, error) {
	var e vacation.Entry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.DealershipID, &e.Date, &e.Hours,
		&e.VacationType, &e.GrantedByAdminID, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func collectVacations(rows pgx.Rows) ([]vacation.Entry, error) {
	var entries []vacation.Entry
	for rows.Next() {
		e, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func NewVacationRepository(db *database.DB) vacation.Repository {
	return &vacationRepository{db: db}
}
