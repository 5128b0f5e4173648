package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/domain/vacation"
)

type VacationServiceImpl struct {
	vacation.Repository
	employee.Directory
}

func NewVacationService(repo vacation.Repository, directory employee.Directory) *VacationServiceImpl {
	return &VacationServiceImpl{
		Repository: repo,
		Directory:  directory,
	}
}

// Grant implements vacation.Service.
func (s *VacationServiceImpl) Grant(ctx context.Context, req vacation.GrantRequest) (vacation.EntryResponse, error) {
	date, err := req.Validate()
	if err != nil {
		return vacation.EntryResponse{}, err
	}

	if _, err := s.Directory.GetByID(ctx, req.EmployeeID); err != nil {
		return vacation.EntryResponse{}, err
	}

	existing, err := s.Repository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return vacation.EntryResponse{}, fmt.Errorf("failed to check existing vacation entry: %w", err)
	}
	if existing != nil {
		return vacation.EntryResponse{}, vacation.ErrDuplicateForDate
	}

	entry := vacation.Entry{
		EmployeeID:       req.EmployeeID,
		DealershipID:     req.DealershipID,
		Date:             date,
		Hours:            req.Hours,
		VacationType:     vacation.VacationType(req.VacationType),
		GrantedByAdminID: req.AdminID,
		Notes:            req.Notes,
	}
	created, err := s.Repository.Create(ctx, entry)
	if err != nil {
		return vacation.EntryResponse{}, fmt.Errorf("failed to create vacation entry: %w", err)
	}
	return toResponse(created), nil
}

// ListForEmployee implements vacation.Service.
func (s *VacationServiceImpl) ListForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]vacation.EntryResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, vacation.ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, vacation.ErrInvalidDate
	}

	entries, err := s.Repository.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation entries: %w", err)
	}

	out := make([]vacation.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toResponse(e))
	}
	return out, nil
}

// Update implements vacation.Service.
func (s *VacationServiceImpl) Update(ctx context.Context, req vacation.UpdateRequest) (vacation.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.EntryResponse{}, err
	}

	entry, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return vacation.EntryResponse{}, err
	}

	if req.Hours != nil {
		entry.Hours = *req.Hours
	}
	if req.VacationType != nil {
		entry.VacationType = vacation.VacationType(*req.VacationType)
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if err := s.Repository.Update(ctx, entry); err != nil {
		return vacation.EntryResponse{}, fmt.Errorf("failed to update vacation entry: %w", err)
	}
	return toResponse(entry), nil
}

// Delete implements vacation.Service.
func (s *VacationServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vacation entry: %w", err)
	}
	return nil
}

func toResponse(e vacation.Entry) vacation.EntryResponse {
	return vacation.EntryResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		DealershipID:     e.DealershipID,
		Date:             e.Date.Format("2006-01-02"),
		Hours:            e.Hours,
		VacationType:     string(e.VacationType),
		GrantedByAdminID: e.GrantedByAdminID,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}
