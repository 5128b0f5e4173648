package analytics

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/analytics"
	"github.com/detailops/timeclock-backend/internal/domain/dealership"
	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/domain/shift"
	"github.com/detailops/timeclock-backend/internal/domain/vacation"
	"github.com/detailops/timeclock-backend/internal/service/payroll"
	shiftsvc "github.com/detailops/timeclock-backend/internal/service/shift"
)

type AnalyticsServiceImpl struct {
	punchRepo    punch.PunchRepository
	vacationRepo vacation.Repository
	shopRepo     dealership.ShopRepository
	directory    employee.Directory

	longOpenThreshold float64

	// Now is the clock; tests override it for determinism.
	Now func() time.Time
}

func NewAnalyticsService(
	punchRepo punch.PunchRepository,
	vacationRepo vacation.Repository,
	shopRepo dealership.ShopRepository,
	directory employee.Directory,
	longOpenThreshold float64,
) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{
		punchRepo:         punchRepo,
		vacationRepo:      vacationRepo,
		shopRepo:          shopRepo,
		directory:         directory,
		longOpenThreshold: longOpenThreshold,
		Now:               time.Now,
	}
}

// TodayStatus implements analytics.Service. The preview deducts the unpaid
// break per shift rather than per day; only finalized reports use the
// day-level rule.
func (s *AnalyticsServiceImpl) TodayStatus(ctx context.Context, employeeID string) (analytics.TodayStatus, error) {
	now := s.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	pairing, err := s.pairForEmployee(ctx, employeeID, dayStart, now, now)
	if err != nil {
		return analytics.TodayStatus{}, err
	}

	status := analytics.TodayStatus{
		EmployeeID:  employeeID,
		Date:        dayStart.Format("2006-01-02"),
		GeneratedAt: now.Format(time.RFC3339),
	}
	for _, sh := range pairing.Shifts {
		status.PaidHours += sh.PaidHours
		if sh.IsOpen {
			status.ClockedIn = true
		}
	}
	return status, nil
}

// WeeklySummary implements analytics.Service.
func (s *AnalyticsServiceImpl) WeeklySummary(ctx context.Context, employeeID string) (analytics.WeeklySummary, error) {
	now := s.Now().UTC()
	weekStart := startOfWeek(now)

	pairing, err := s.pairForEmployee(ctx, employeeID, weekStart, now, now)
	if err != nil {
		return analytics.WeeklySummary{}, err
	}

	byDay := shiftsvc.PaidHoursByDay(pairing.Shifts)
	var paid float64
	for _, day := range shiftsvc.SortedDays(byDay) {
		paid += byDay[day]
	}
	regular, overtime := payroll.SplitRegularOvertime(paid)

	summary := analytics.WeeklySummary{
		EmployeeID:    employeeID,
		WeekStart:     weekStart.Format("2006-01-02"),
		PaidHours:     paid,
		RegularHours:  regular,
		OvertimeHours: overtime,
	}

	emp, err := s.directory.GetByID(ctx, employeeID)
	if err != nil {
		return analytics.WeeklySummary{}, err
	}
	if emp.WageUnavailable {
		summary.WageUnavailable = true
	} else {
		summary.Pay = payroll.ComputePay(regular, overtime, emp.HourlyWage)
	}
	return summary, nil
}

// EmployeeRange implements analytics.Service.
func (s *AnalyticsServiceImpl) EmployeeRange(ctx context.Context, employeeID, startDate, endDate string) (analytics.EmployeeLabor, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return analytics.EmployeeLabor{}, err
	}

	emp, err := s.directory.GetByID(ctx, employeeID)
	if err != nil {
		return analytics.EmployeeLabor{}, err
	}

	now := s.Now().UTC()
	pairing, err := s.pairForEmployee(ctx, employeeID, start, end, now)
	if err != nil {
		return analytics.EmployeeLabor{}, err
	}

	entries, err := s.vacationRepo.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return analytics.EmployeeLabor{}, fmt.Errorf("failed to list vacation entries: %w", err)
	}

	labor := s.buildEmployeeLabor(emp, pairing, entries, true)
	return labor, nil
}

// DealershipRange implements analytics.Service.
func (s *AnalyticsServiceImpl) DealershipRange(ctx context.Context, dealershipID, startDate, endDate string) (analytics.DealershipLabor, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return analytics.DealershipLabor{}, err
	}
	shop, err := s.shopRepo.GetByID(ctx, dealershipID)
	if err != nil {
		return analytics.DealershipLabor{}, err
	}
	return s.dealershipLabor(ctx, shop, start, end)
}

// CompanyRange implements analytics.Service.
func (s *AnalyticsServiceImpl) CompanyRange(ctx context.Context, startDate, endDate string) (analytics.CompanyLabor, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return analytics.CompanyLabor{}, err
	}

	shops, err := s.shopRepo.List(ctx)
	if err != nil {
		return analytics.CompanyLabor{}, fmt.Errorf("failed to list dealerships: %w", err)
	}

	company := analytics.CompanyLabor{Dealerships: []analytics.DealershipLabor{}}
	for _, shop := range shops {
		labor, err := s.dealershipLabor(ctx, shop, start, end)
		if err != nil {
			return analytics.CompanyLabor{}, err
		}
		company.TotalHours += labor.TotalHours
		company.VacationHours += labor.VacationHours
		company.TotalCost += labor.TotalCost
		company.Dealerships = append(company.Dealerships, labor)
	}
	return company, nil
}

// dealershipLabor aggregates one dealership over a window. Pairing always
// runs over an employee's full punch stream so cross-dealership sequencing
// stays correct; attribution then filters shifts to this location.
func (s *AnalyticsServiceImpl) dealershipLabor(ctx context.Context, shop dealership.Shop, start, end time.Time) (analytics.DealershipLabor, error) {
	employees, err := s.directory.List(ctx)
	if err != nil {
		return analytics.DealershipLabor{}, fmt.Errorf("failed to list employees: %w", err)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	now := s.Now().UTC()
	labor := analytics.DealershipLabor{
		DealershipID: shop.ID,
		Name:         shop.Name,
		Employees:    []analytics.EmployeeLabor{},
	}

	hourSpend := make(map[int]float64)
	hourEmployees := make(map[int]map[string]bool)

	for _, emp := range employees {
		if !slices.Contains(emp.DealershipIDs, shop.ID) {
			continue
		}

		pairing, err := s.pairForEmployee(ctx, emp.ID, start, end, now)
		if err != nil {
			return analytics.DealershipLabor{}, err
		}
		local := shift.PairingResult{Shifts: []shift.Shift{}, Anomalies: []shift.Anomaly{}}
		for _, sh := range pairing.Shifts {
			if sh.DealershipID == shop.ID {
				local.Shifts = append(local.Shifts, sh)
			}
		}
		for _, a := range pairing.Anomalies {
			if a.DealershipID == shop.ID {
				local.Anomalies = append(local.Anomalies, a)
			}
		}

		entries, err := s.vacationRepo.ListByEmployeeRange(ctx, emp.ID, start, end)
		if err != nil {
			return analytics.DealershipLabor{}, fmt.Errorf("failed to list vacation entries: %w", err)
		}
		localEntries := entries[:0:0]
		for _, v := range entries {
			if v.DealershipID == shop.ID {
				localEntries = append(localEntries, v)
			}
		}

		empLabor := s.buildEmployeeLabor(emp, local, localEntries, false)
		labor.Employees = append(labor.Employees, empLabor)
		labor.TotalHours += empLabor.WorkedHours
		labor.VacationHours += empLabor.VacationHours
		labor.TotalCost += empLabor.TotalCost
		if empLabor.WorkedHours > 0 || empLabor.VacationHours > 0 {
			labor.ActiveEmployees++
		}

		// Hour-of-day attribution: the shift's straight-time cost spreads
		// in equal fractions over every hour it touches.
		if !emp.WageUnavailable {
			for _, sh := range local.Shifts {
				shiftEnd := sh.ClockOut
				if shiftEnd == nil {
					capped := now
					if capped.After(end) {
						capped = end
					}
					shiftEnd = &capped
				}
				buckets := shiftsvc.HourBuckets(sh.ClockIn, *shiftEnd)
				if len(buckets) == 0 {
					continue
				}
				perHour := sh.PaidHours * emp.HourlyWage / float64(len(buckets))
				for _, h := range buckets {
					hourSpend[h] += perHour
					if hourEmployees[h] == nil {
						hourEmployees[h] = make(map[string]bool)
					}
					hourEmployees[h][emp.ID] = true
				}
			}
		}
	}

	labor.Hourly = make([]analytics.HourlySpend, 0, len(hourSpend))
	for h := 0; h < 24; h++ {
		if spend, ok := hourSpend[h]; ok {
			labor.Hourly = append(labor.Hourly, analytics.HourlySpend{
				Hour:      h,
				Spend:     spend,
				Employees: len(hourEmployees[h]),
			})
		}
	}
	return labor, nil
}

// buildEmployeeLabor turns a pairing result and vacation entries into the
// report row. includeDetails attaches per-day splits, shifts and anomalies
// for the single-employee report.
func (s *AnalyticsServiceImpl) buildEmployeeLabor(
	emp employee.Employee,
	pairing shift.PairingResult,
	entries []vacation.Entry,
	includeDetails bool,
) analytics.EmployeeLabor {
	byDay := shiftsvc.PaidHoursByDay(pairing.Shifts)

	labor := analytics.EmployeeLabor{
		EmployeeID:      emp.ID,
		Name:            emp.DisplayName,
		WageUnavailable: emp.WageUnavailable,
	}

	days, regular, overtime := weeklySplits(byDay, emp)
	for _, d := range days {
		labor.WorkedHours += d.PaidHours
	}
	labor.RegularHours = regular
	labor.OvertimeHours = overtime

	for _, v := range entries {
		labor.VacationHours += v.Hours
	}

	if !emp.WageUnavailable {
		labor.LaborCost = payroll.ComputePay(regular, overtime, emp.HourlyWage)
		labor.VacationCost = payroll.VacationPay(labor.VacationHours, emp.HourlyWage)
		labor.TotalCost = labor.LaborCost + labor.VacationCost
	}

	for _, sh := range pairing.Shifts {
		if sh.IsOpen {
			labor.ClockedIn = true
		}
	}

	if includeDetails {
		labor.Days = days
		labor.Shifts = pairing.Shifts
		labor.Anomalies = pairing.Anomalies
	}
	return labor
}

// weeklySplits allocates each calendar day's paid hours into regular and
// overtime, week by week. Hours earlier in a week consume the 40 hour
// threshold first, so Friday after a heavy week is all overtime.
func weeklySplits(byDay map[string]float64, emp employee.Employee) ([]analytics.DailyBreakdown, float64, float64) {
	days := shiftsvc.SortedDays(byDay)

	// Group consecutive days into Monday-start weeks, preserving order.
	var weekKeys []string
	weeks := make(map[string][]payroll.DayHours)
	for _, day := range days {
		wk := weekKeyOf(day)
		if _, ok := weeks[wk]; !ok {
			weekKeys = append(weekKeys, wk)
		}
		weeks[wk] = append(weeks[wk], payroll.DayHours{Date: day, PaidHours: byDay[day]})
	}

	var breakdowns []analytics.DailyBreakdown
	var regular, overtime float64
	for _, wk := range weekKeys {
		for _, split := range payroll.AllocateWeekDaily(weeks[wk], payroll.WeeklyOvertimeThreshold) {
			d := analytics.DailyBreakdown{
				Date:          split.Date,
				PaidHours:     split.PaidHours,
				RegularHours:  split.RegularHours,
				OvertimeHours: split.OvertimeHours,
			}
			if !emp.WageUnavailable {
				d.Pay = payroll.ComputePay(split.RegularHours, split.OvertimeHours, emp.HourlyWage)
			}
			regular += split.RegularHours
			overtime += split.OvertimeHours
			breakdowns = append(breakdowns, d)
		}
	}
	return breakdowns, regular, overtime
}

// pairForEmployee loads an employee's in-window punches plus the single
// punch before the window for carry-in, then runs the pairing pass.
func (s *AnalyticsServiceImpl) pairForEmployee(ctx context.Context, employeeID string, start, end, now time.Time) (shift.PairingResult, error) {
	events, err := s.punchRepo.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return shift.PairingResult{}, fmt.Errorf("failed to list punches: %w", err)
	}
	prior, err := s.punchRepo.ListByEmployeeBefore(ctx, employeeID, start, 1)
	if err != nil {
		return shift.PairingResult{}, fmt.Errorf("failed to load carry-in punch: %w", err)
	}
	all := append(prior, events...)
	return shiftsvc.PairShifts(all, start, end, now, s.longOpenThreshold), nil
}

// parseRange turns YYYY-MM-DD bounds into a [startMidnight, endOfDay]
// window.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, analytics.ErrInvalidDateRange
	}
	endDay, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, analytics.ErrInvalidDateRange
	}
	if endDay.Before(start) {
		return time.Time{}, time.Time{}, analytics.ErrInvalidDateRange
	}
	end := endDay.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

// startOfWeek returns the Monday midnight on or before t, in UTC.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func weekKeyOf(date string) string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return startOfWeek(day).Format("2006-01-02")
}
