package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
)

// employeeDirectory reads the synced copy of the external user directory.
// The wage column is legacy text and may hold numbers, blanks or garbage;
// coercion failures mark the employee rather than erroring the whole read,
// so reports can still show their hours.
type employeeDirectory struct {
	db *database.DB
}

// GetByID implements employee.Directory.
func (e *employeeDirectory) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, display_name, hourly_wage, dealership_ids
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// List implements employee.Directory.
func (e *employeeDirectory) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, display_name, hourly_wage, dealership_ids
		FROM employees
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// AssignedDealerships implements employee.Directory.
func (e *employeeDirectory) AssignedDealerships(ctx context.Context, id string) ([]string, error) {
	emp, err := e.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return emp.DealershipIDs, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var rawWage *string
	if err := row.Scan(&emp.ID, &emp.DisplayName, &rawWage, &emp.DealershipIDs); err != nil {
		return employee.Employee{}, err
	}

	var raw any
	if rawWage != nil {
		raw = *rawWage
	}
	wage, err := employee.CoerceWage(raw)
	if err != nil {
		slog.Warn("employee wage unusable, marking unavailable",
			"employee_id", emp.ID,
			"error", err,
		)
		emp.WageUnavailable = true
		return emp, nil
	}
	emp.HourlyWage = wage
	return emp, nil
}

func NewEmployeeDirectory(db *database.DB) employee.Directory {
	return &employeeDirectory{db: db}
}
