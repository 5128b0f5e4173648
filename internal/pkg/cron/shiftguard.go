package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/punch"
)

// ShiftGuardJobs hosts the safety-net sweep that force-closes shifts left
// open past the configured threshold.
type ShiftGuardJobs struct {
	punchService   punch.PunchService
	thresholdHours float64
}

func NewShiftGuardJobs(punchService punch.PunchService, thresholdHours float64) *ShiftGuardJobs {
	return &ShiftGuardJobs{
		punchService:   punchService,
		thresholdHours: thresholdHours,
	}
}

// RegisterJobs registers the sweep with the scheduler.
func (j *ShiftGuardJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("shift_guard_sweep", 1*time.Hour, j.SweepOpenShifts)
}

// SweepOpenShifts runs one Shift Guard pass.
func (j *ShiftGuardJobs) SweepOpenShifts(ctx context.Context) error {
	result, err := j.punchService.SweepOpenShifts(ctx, j.thresholdHours)
	if err != nil {
		return err
	}

	if result.ShiftsClosed > 0 || len(result.Failures) > 0 {
		slog.Info("Shift guard sweep finished",
			"scanned", result.EmployeesScanned,
			"closed", result.ShiftsClosed,
			"failures", len(result.Failures),
		)
	}
	return nil
}
