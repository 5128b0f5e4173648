package punch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/audit"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
)

// SweepOpenShifts implements punch.PunchService. It scans every employee
// with punch activity in the lookback window and force-closes any shift
// that has been open for at least thresholdHours. One employee failing
// never aborts the sweep.
func (s *PunchServiceImpl) SweepOpenShifts(ctx context.Context, thresholdHours float64) (punch.SweepResult, error) {
	now := s.Now().UTC()
	since := now.AddDate(0, 0, -s.lookbackDays)

	ids, err := s.PunchRepository.ActiveEmployeeIDs(ctx, since)
	if err != nil {
		return punch.SweepResult{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	result := punch.SweepResult{EmployeesScanned: len(ids)}
	for _, employeeID := range ids {
		closed, err := s.sweepEmployee(ctx, employeeID, thresholdHours, now)
		if err != nil {
			slog.Error("shift guard sweep failed for employee",
				"employee_id", employeeID,
				"error", err,
			)
			result.Failures = append(result.Failures, employeeID)
			continue
		}
		if closed {
			result.ShiftsClosed++
		}
	}
	return result, nil
}

func (s *PunchServiceImpl) sweepEmployee(ctx context.Context, employeeID string, thresholdHours float64, now time.Time) (bool, error) {
	// Take the same lock as RecordPunch so the latest-punch read below is
	// also the race re-check: an employee who clocks out between the scan
	// and here is seen before anything is written.
	lock := s.lockFor(employeeID)
	lock.Lock()
	defer lock.Unlock()

	last, err := s.PunchRepository.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to get latest punch: %w", err)
	}
	if last == nil || !last.IsClockIn() {
		return false, nil
	}
	if now.Sub(last.Timestamp).Hours() < thresholdHours {
		return false, nil
	}

	// The synthetic stop lands exactly at the threshold, not at sweep time,
	// so the paid window never depends on scheduler jitter.
	stopAt := last.Timestamp.Add(time.Duration(thresholdHours * float64(time.Hour)))
	note := fmt.Sprintf("AUTO STOP SHIFT: exceeded %.2f hours.", thresholdHours)
	systemID := audit.SystemAdminID

	event := punch.PunchEvent{
		EmployeeID:      employeeID,
		DealershipID:    last.DealershipID,
		PunchType:       punch.TypeClockOut,
		Timestamp:       stopAt,
		AdminNotes:      &note,
		AdminModifierID: &systemID,
	}

	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		created, err := s.PunchRepository.Create(txCtx, event)
		if err != nil {
			return fmt.Errorf("failed to create auto stop punch: %w", err)
		}

		change := audit.TimeChange{
			EmployeeID:   employeeID,
			AdminID:      audit.SystemAdminID,
			Action:       audit.ActionCreate,
			DealershipID: last.DealershipID,
			ClockOutID:   &created.ID,
			EndTime:      &stopAt,
			Reason:       fmt.Sprintf("Auto stop shift after %.2f hours (system).", thresholdHours),
			PunchDate:    stopAt.Format("2006-01-02"),
		}
		if _, err := s.auditRepo.Create(txCtx, change); err != nil {
			return fmt.Errorf("failed to record auto stop audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	slog.Info("shift guard closed long-open shift",
		"employee_id", employeeID,
		"clock_in", last.Timestamp,
		"clock_out", stopAt,
	)
	return true, nil
}
