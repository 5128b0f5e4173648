package analytics

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailops/timeclock-backend/internal/domain/analytics"
	"github.com/detailops/timeclock-backend/internal/domain/dealership"
	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/domain/vacation"
)

type fakePunchRepo struct {
	events []punch.PunchEvent
	nextID int
}

func (f *fakePunchRepo) add(employeeID, dealershipID string, pt punch.PunchType, at time.Time) {
	f.nextID++
	f.events = append(f.events, punch.PunchEvent{
		ID:           fmt.Sprintf("punch-%d", f.nextID),
		EmployeeID:   employeeID,
		DealershipID: dealershipID,
		PunchType:    pt,
		Timestamp:    at,
	})
}

func (f *fakePunchRepo) addShift(employeeID, dealershipID string, in, out time.Time) {
	f.add(employeeID, dealershipID, punch.TypeClockIn, in)
	f.add(employeeID, dealershipID, punch.TypeClockOut, out)
}

func (f *fakePunchRepo) Create(_ context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	f.nextID++
	event.ID = fmt.Sprintf("punch-%d", f.nextID)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakePunchRepo) GetByID(_ context.Context, id string) (punch.PunchEvent, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return punch.PunchEvent{}, punch.ErrPunchNotFound
}

func (f *fakePunchRepo) GetLatestByEmployee(_ context.Context, employeeID string) (*punch.PunchEvent, error) {
	var latest *punch.PunchEvent
	for i := range f.events {
		e := f.events[i]
		if e.EmployeeID != employeeID {
			continue
		}
		if latest == nil || e.Timestamp.After(latest.Timestamp) {
			latest = &e
		}
	}
	return latest, nil
}

func (f *fakePunchRepo) ListByEmployeeRange(_ context.Context, employeeID string, start, end time.Time) ([]punch.PunchEvent, error) {
	var out []punch.PunchEvent
	for _, e := range f.events {
		if e.EmployeeID == employeeID && !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakePunchRepo) ListByEmployeeBefore(_ context.Context, employeeID string, before time.Time, limit int) ([]punch.PunchEvent, error) {
	var out []punch.PunchEvent
	for _, e := range f.events {
		if e.EmployeeID == employeeID && e.Timestamp.Before(before) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePunchRepo) ListRange(_ context.Context, start, end time.Time) ([]punch.PunchEvent, error) {
	var out []punch.PunchEvent
	for _, e := range f.events {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]punch.PunchEvent, error) {
	return f.ListByEmployeeBefore(context.Background(), employeeID, time.Now().Add(time.Hour), limit)
}

func (f *fakePunchRepo) ActiveEmployeeIDs(_ context.Context, since time.Time) ([]string, error) {
	seen := map[string]bool{}
	for _, e := range f.events {
		if !e.Timestamp.Before(since) {
			seen[e.EmployeeID] = true
		}
	}
	var ids []string
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakePunchRepo) Update(_ context.Context, event punch.PunchEvent) error { return nil }
func (f *fakePunchRepo) Delete(_ context.Context, id string) error              { return nil }

type fakeVacationRepo struct {
	entries []vacation.Entry
}

func (f *fakeVacationRepo) Create(_ context.Context, e vacation.Entry) (vacation.Entry, error) {
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeVacationRepo) GetByID(_ context.Context, id string) (vacation.Entry, error) {
	return vacation.Entry{}, vacation.ErrEntryNotFound
}

func (f *fakeVacationRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*vacation.Entry, error) {
	return nil, nil
}

func (f *fakeVacationRepo) ListByEmployeeRange(_ context.Context, employeeID string, start, end time.Time) ([]vacation.Entry, error) {
	var out []vacation.Entry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) ListRange(_ context.Context, start, end time.Time) ([]vacation.Entry, error) {
	var out []vacation.Entry
	for _, e := range f.entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) Update(_ context.Context, e vacation.Entry) error { return nil }
func (f *fakeVacationRepo) Delete(_ context.Context, id string) error        { return nil }

type fakeShopRepo struct {
	shops map[string]dealership.Shop
}

func (f *fakeShopRepo) GetByID(_ context.Context, id string) (dealership.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return dealership.Shop{}, dealership.ErrShopNotFound
	}
	return s, nil
}

func (f *fakeShopRepo) List(_ context.Context) ([]dealership.Shop, error) {
	var out []dealership.Shop
	for _, s := range f.shops {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeDirectory struct {
	employees map[string]employee.Employee
}

func (f *fakeDirectory) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeDirectory) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDirectory) AssignedDealerships(_ context.Context, id string) ([]string, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e.DealershipIDs, nil
}

func newTestService() (*AnalyticsServiceImpl, *fakePunchRepo, *fakeVacationRepo) {
	punchRepo := &fakePunchRepo{}
	vacRepo := &fakeVacationRepo{}
	shopRepo := &fakeShopRepo{shops: map[string]dealership.Shop{
		"shop-1": {ID: "shop-1", Name: "Downtown"},
		"shop-2": {ID: "shop-2", Name: "Airport"},
	}}
	directory := &fakeDirectory{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", DisplayName: "Dana Keller", HourlyWage: 20, DealershipIDs: []string{"shop-1"}},
		"emp-2": {ID: "emp-2", DisplayName: "Ray Soto", HourlyWage: 18, DealershipIDs: []string{"shop-1", "shop-2"}},
		"emp-3": {ID: "emp-3", DisplayName: "Kim Vo", WageUnavailable: true, DealershipIDs: []string{"shop-1"}},
	}}
	return NewAnalyticsService(punchRepo, vacRepo, shopRepo, directory, 15), punchRepo, vacRepo
}

func day(d int, h, m int) time.Time {
	// March 2025: the 10th is a Monday.
	return time.Date(2025, 3, d, h, m, 0, 0, time.UTC)
}

func TestTodayStatus(t *testing.T) {
	svc, repo, _ := newTestService()
	now := day(12, 15, 0)
	svc.Now = func() time.Time { return now }

	// A closed 3 hour shift plus an open one started an hour ago. Both are
	// under the 5 hour per-shift break threshold, so nothing is deducted.
	repo.addShift("emp-1", "shop-1", day(12, 8, 0), day(12, 11, 0))
	repo.add("emp-1", "shop-1", punch.TypeClockIn, day(12, 14, 0))

	status, err := svc.TodayStatus(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-12", status.Date)
	assert.True(t, status.ClockedIn)
	assert.InDelta(t, 4.0, status.PaidHours, 1e-9)
}

func TestWeeklySummary_Overtime(t *testing.T) {
	svc, repo, _ := newTestService()
	// Friday evening of the week starting Monday the 10th.
	svc.Now = func() time.Time { return day(14, 20, 0) }

	// Four 10 hour days (9.5 paid each) plus 7.5 raw on Friday (7 paid):
	// 45 paid hours for the week.
	for d := 10; d <= 13; d++ {
		repo.addShift("emp-1", "shop-1", day(d, 8, 0), day(d, 18, 0))
	}
	repo.addShift("emp-1", "shop-1", day(14, 8, 0), day(14, 15, 30))

	summary, err := svc.WeeklySummary(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", summary.WeekStart)
	assert.InDelta(t, 45.0, summary.PaidHours, 1e-9)
	assert.InDelta(t, 40.0, summary.RegularHours, 1e-9)
	assert.InDelta(t, 5.0, summary.OvertimeHours, 1e-9)
	assert.InDelta(t, 40*20+5*30, summary.Pay, 1e-6)
	assert.False(t, summary.WageUnavailable)
}

func TestEmployeeRange_DailyAllocation(t *testing.T) {
	svc, repo, vacRepo := newTestService()
	svc.Now = func() time.Time { return day(17, 12, 0) }

	// Mon-Thu 10h raw (9.5 paid), Friday 4h. Cumulative hits 38 before
	// Friday, so Friday splits 2 regular / 2 overtime.
	for d := 10; d <= 13; d++ {
		repo.addShift("emp-1", "shop-1", day(d, 8, 0), day(d, 18, 0))
	}
	repo.addShift("emp-1", "shop-1", day(14, 8, 0), day(14, 12, 0))

	vacRepo.entries = append(vacRepo.entries, vacation.Entry{
		EmployeeID:   "emp-1",
		DealershipID: "shop-1",
		Date:         time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Hours:        8,
		VacationType: vacation.TypeVacation,
	})

	labor, err := svc.EmployeeRange(context.Background(), "emp-1", "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	assert.InDelta(t, 42.0, labor.WorkedHours, 1e-9)
	assert.InDelta(t, 40.0, labor.RegularHours, 1e-9)
	assert.InDelta(t, 2.0, labor.OvertimeHours, 1e-9)
	assert.InDelta(t, 8.0, labor.VacationHours, 1e-9)
	assert.InDelta(t, 40*20+2*30, labor.LaborCost, 1e-6)
	assert.InDelta(t, 8*20, labor.VacationCost, 1e-6)
	assert.InDelta(t, labor.LaborCost+labor.VacationCost, labor.TotalCost, 1e-6)

	require.Len(t, labor.Days, 5)
	friday := labor.Days[4]
	assert.Equal(t, "2025-03-14", friday.Date)
	assert.InDelta(t, 2.0, friday.RegularHours, 1e-9)
	assert.InDelta(t, 2.0, friday.OvertimeHours, 1e-9)
	assert.Len(t, labor.Shifts, 5)
	assert.Empty(t, labor.Anomalies)
}

func TestEmployeeRange_WageUnavailable(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Now = func() time.Time { return day(17, 12, 0) }

	repo.addShift("emp-3", "shop-1", day(10, 8, 0), day(10, 16, 0))

	labor, err := svc.EmployeeRange(context.Background(), "emp-3", "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	// Hours are reported, costs are withheld and flagged.
	assert.True(t, labor.WageUnavailable)
	assert.InDelta(t, 7.5, labor.WorkedHours, 1e-9)
	assert.Zero(t, labor.LaborCost)
	assert.Zero(t, labor.TotalCost)
}

func TestEmployeeRange_InvalidRange(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.EmployeeRange(context.Background(), "emp-1", "2025-03-16", "2025-03-10")
	assert.ErrorIs(t, err, analytics.ErrInvalidDateRange)

	_, err = svc.EmployeeRange(context.Background(), "emp-1", "bad", "2025-03-10")
	assert.ErrorIs(t, err, analytics.ErrInvalidDateRange)
}

func TestDealershipRange_Attribution(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Now = func() time.Time { return day(17, 12, 0) }

	// emp-1 works downtown; emp-2 works one shift at each location. Only
	// work attributed to shop-1 counts for shop-1.
	repo.addShift("emp-1", "shop-1", day(10, 8, 0), day(10, 12, 0))
	repo.addShift("emp-2", "shop-1", day(10, 9, 0), day(10, 13, 0))
	repo.addShift("emp-2", "shop-2", day(11, 9, 0), day(11, 13, 0))

	labor, err := svc.DealershipRange(context.Background(), "shop-1", "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	assert.Equal(t, "Downtown", labor.Name)
	// emp-3 is registered but idle, so it is listed yet not active.
	assert.Len(t, labor.Employees, 3)
	assert.Equal(t, 2, labor.ActiveEmployees)
	assert.InDelta(t, 8.0, labor.TotalHours, 1e-9)
	assert.InDelta(t, 4*20+4*18, labor.TotalCost, 1e-6)

	// Buckets include the clock-out hour, so 8:00-12:00 spans hours 8-12.
	require.NotEmpty(t, labor.Hourly)
	byHour := map[int]analytics.HourlySpend{}
	for _, h := range labor.Hourly {
		byHour[h.Hour] = h
	}
	assert.Equal(t, 1, byHour[8].Employees)
	assert.Equal(t, 2, byHour[9].Employees)
	// emp-1: 4 paid hours * $20 over 5 buckets = $16/hour.
	assert.InDelta(t, 16.0, byHour[8].Spend, 1e-6)
}

func TestCompanyRange_SumsDealerships(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Now = func() time.Time { return day(17, 12, 0) }

	repo.addShift("emp-1", "shop-1", day(10, 8, 0), day(10, 12, 0))
	repo.addShift("emp-2", "shop-2", day(11, 9, 0), day(11, 13, 0))

	company, err := svc.CompanyRange(context.Background(), "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	require.Len(t, company.Dealerships, 2)
	var hours, cost float64
	for _, d := range company.Dealerships {
		hours += d.TotalHours
		cost += d.TotalCost
	}
	assert.InDelta(t, hours, company.TotalHours, 1e-9)
	assert.InDelta(t, cost, company.TotalCost, 1e-6)
	assert.InDelta(t, 8.0, company.TotalHours, 1e-9)
}

func TestEmployeeRange_CarryInOvernight(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Now = func() time.Time { return day(17, 12, 0) }

	// Clock-in Sunday night before the window, clock-out Monday morning
	// inside it. The carry-in seeds an open shift at the boundary.
	repo.add("emp-1", "shop-1", punch.TypeClockIn, day(9, 23, 0))
	repo.add("emp-1", "shop-1", punch.TypeClockOut, day(10, 7, 0))

	labor, err := svc.EmployeeRange(context.Background(), "emp-1", "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	require.Len(t, labor.Shifts, 1)
	assert.True(t, labor.Shifts[0].ClockIn.Equal(day(9, 23, 0)))
	assert.InDelta(t, 7.5, labor.WorkedHours, 1e-9)
	assert.Empty(t, labor.Anomalies)
}
