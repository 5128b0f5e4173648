package timeadmin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/audit"
	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/domain/timeadmin"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
	"github.com/detailops/timeclock-backend/internal/repository/postgresql"
)

type TimeAdminServiceImpl struct {
	db *database.DB
	punch.PunchRepository
	employee.Directory
	auditRepo audit.Repository

	// Now is the clock; tests override it for determinism.
	Now func() time.Time
}

func NewTimeAdminService(
	db *database.DB,
	punchRepo punch.PunchRepository,
	directory employee.Directory,
	auditRepo audit.Repository,
) *TimeAdminServiceImpl {
	return &TimeAdminServiceImpl{
		db:              db,
		PunchRepository: punchRepo,
		Directory:       directory,
		auditRepo:       auditRepo,
		Now:             time.Now,
	}
}

// CreatePair implements timeadmin.Service.
func (s *TimeAdminServiceImpl) CreatePair(ctx context.Context, req timeadmin.CreatePairRequest) (timeadmin.PairResponse, error) {
	start, end, err := req.Times()
	if err != nil {
		return timeadmin.PairResponse{}, err
	}
	if _, err := s.Directory.GetByID(ctx, req.EmployeeID); err != nil {
		return timeadmin.PairResponse{}, err
	}

	var resp timeadmin.PairResponse
	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		clockIn, err := s.PunchRepository.Create(txCtx, punch.PunchEvent{
			EmployeeID:   req.EmployeeID,
			DealershipID: req.DealershipID,
			PunchType:    punch.TypeClockIn,
			Timestamp:    start,
		})
		if err != nil {
			return fmt.Errorf("failed to create clock-in: %w", err)
		}
		clockOut, err := s.PunchRepository.Create(txCtx, punch.PunchEvent{
			EmployeeID:   req.EmployeeID,
			DealershipID: req.DealershipID,
			PunchType:    punch.TypeClockOut,
			Timestamp:    end,
		})
		if err != nil {
			return fmt.Errorf("failed to create clock-out: %w", err)
		}

		change := audit.TimeChange{
			AdminID:      req.AdminID,
			EmployeeID:   req.EmployeeID,
			Action:       audit.ActionCreate,
			Reason:       req.Reason,
			ClockInID:    &clockIn.ID,
			ClockOutID:   &clockOut.ID,
			DealershipID: req.DealershipID,
			StartTime:    &start,
			EndTime:      &end,
			PunchDate:    req.PunchDate,
		}
		if _, err := s.auditRepo.Create(txCtx, change); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}

		resp = timeadmin.PairResponse{ClockIn: clockIn, ClockOut: clockOut}
		return nil
	})
	if err != nil {
		return timeadmin.PairResponse{}, err
	}
	return resp, nil
}

// EditPunch implements timeadmin.Service.
func (s *TimeAdminServiceImpl) EditPunch(ctx context.Context, req timeadmin.EditPunchRequest) (punch.PunchEvent, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchEvent{}, err
	}

	event, err := s.PunchRepository.GetByID(ctx, req.PunchID)
	if err != nil {
		return punch.PunchEvent{}, err
	}

	originalTime := event.Timestamp
	originalDealership := event.DealershipID

	if req.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return punch.PunchEvent{}, timeadmin.ErrInvalidTimeFormat
		}
		event.Timestamp = ts.UTC()
	}
	if req.DealershipID != nil {
		event.DealershipID = *req.DealershipID
	}
	event.AdminModifierID = &req.AdminID

	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		if err := s.PunchRepository.Update(txCtx, event); err != nil {
			return fmt.Errorf("failed to update punch: %w", err)
		}

		change := audit.TimeChange{
			AdminID:              req.AdminID,
			EmployeeID:           event.EmployeeID,
			Action:               audit.ActionEdit,
			Reason:               req.Reason,
			DealershipID:         event.DealershipID,
			OriginalDealershipID: &originalDealership,
			PunchDate:            event.Timestamp.Format("2006-01-02"),
		}
		if event.IsClockIn() {
			change.ClockInID = &event.ID
			change.StartTime = &event.Timestamp
			change.OriginalStartTime = &originalTime
		} else {
			change.ClockOutID = &event.ID
			change.EndTime = &event.Timestamp
			change.OriginalEndTime = &originalTime
		}
		if _, err := s.auditRepo.Create(txCtx, change); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return punch.PunchEvent{}, err
	}
	return event, nil
}

// DeletePunch implements timeadmin.Service.
func (s *TimeAdminServiceImpl) DeletePunch(ctx context.Context, req timeadmin.DeletePunchRequest) error {
	if strings.TrimSpace(req.Reason) == "" {
		return timeadmin.ErrReasonRequired
	}

	event, err := s.PunchRepository.GetByID(ctx, req.PunchID)
	if err != nil {
		return err
	}

	return s.inTransaction(ctx, func(txCtx context.Context) error {
		if err := s.PunchRepository.Delete(txCtx, req.PunchID); err != nil {
			return fmt.Errorf("failed to delete punch: %w", err)
		}

		ts := event.Timestamp
		change := audit.TimeChange{
			AdminID:      req.AdminID,
			EmployeeID:   event.EmployeeID,
			Action:       audit.ActionDelete,
			Reason:       req.Reason,
			DealershipID: event.DealershipID,
			PunchDate:    ts.Format("2006-01-02"),
		}
		if event.IsClockIn() {
			change.ClockInID = &event.ID
			change.OriginalStartTime = &ts
		} else {
			change.ClockOutID = &event.ID
			change.OriginalEndTime = &ts
		}
		if _, err := s.auditRepo.Create(txCtx, change); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}
		return nil
	})
}

// StopShift implements timeadmin.Service.
func (s *TimeAdminServiceImpl) StopShift(ctx context.Context, req timeadmin.StopShiftRequest) (punch.PunchEvent, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return punch.PunchEvent{}, timeadmin.ErrReasonRequired
	}

	last, err := s.PunchRepository.GetLatestByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return punch.PunchEvent{}, fmt.Errorf("failed to get latest punch: %w", err)
	}
	if last == nil || !last.IsClockIn() {
		return punch.PunchEvent{}, timeadmin.ErrNotClockedIn
	}

	now := s.Now().UTC()
	note := fmt.Sprintf("Shift stopped by admin: %s", req.Reason)
	event := punch.PunchEvent{
		EmployeeID:      req.EmployeeID,
		DealershipID:    last.DealershipID,
		PunchType:       punch.TypeClockOut,
		Timestamp:       now,
		AdminNotes:      &note,
		AdminModifierID: &req.AdminID,
	}

	var created punch.PunchEvent
	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.PunchRepository.Create(txCtx, event)
		if err != nil {
			return fmt.Errorf("failed to create clock-out: %w", err)
		}

		change := audit.TimeChange{
			AdminID:      req.AdminID,
			EmployeeID:   req.EmployeeID,
			Action:       audit.ActionCreate,
			Reason:       req.Reason,
			ClockOutID:   &created.ID,
			DealershipID: last.DealershipID,
			EndTime:      &now,
			PunchDate:    now.Format("2006-01-02"),
		}
		if _, err := s.auditRepo.Create(txCtx, change); err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return punch.PunchEvent{}, err
	}
	return created, nil
}

// ChangeHistory implements timeadmin.Service.
func (s *TimeAdminServiceImpl) ChangeHistory(ctx context.Context, employeeID string, limit int) ([]audit.TimeChange, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records, err := s.auditRepo.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list change history: %w", err)
	}
	return records, nil
}

// AutoStopEvents implements timeadmin.Service.
func (s *TimeAdminServiceImpl) AutoStopEvents(ctx context.Context, limit int) ([]audit.TimeChange, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	records, err := s.auditRepo.ListAutoStops(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto stop events: %w", err)
	}
	return records, nil
}

// inTransaction runs fn inside a database transaction. In-memory test
// doubles run without a database handle and skip the transaction.
func (s *TimeAdminServiceImpl) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}
