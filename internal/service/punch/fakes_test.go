package punch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/audit"
	"github.com/detailops/timeclock-backend/internal/domain/dealership"
	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
)

type fakePunchRepo struct {
	mu     sync.Mutex
	events []punch.PunchEvent
	nextID int

	failLatestFor string
}

func (f *fakePunchRepo) Create(_ context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	event.ID = fmt.Sprintf("punch-%d", f.nextID)
	event.CreatedAt = time.Now()
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakePunchRepo) GetByID(_ context.Context, id string) (punch.PunchEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return punch.PunchEvent{}, punch.ErrPunchNotFound
}

func (f *fakePunchRepo) GetLatestByEmployee(_ context.Context, employeeID string) (*punch.PunchEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if employeeID == f.failLatestFor {
		return nil, errors.New("storage unavailable")
	}
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
	f.mu.Lock()
	defer f.mu.Unlock()
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
	f.mu.Lock()
	defer f.mu.Unlock()
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
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []punch.PunchEvent
	for _, e := range f.events {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakePunchRepo) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]punch.PunchEvent, error) {
	out, _ := f.ListByEmployeeBefore(context.Background(), employeeID, time.Now().Add(time.Hour), limit)
	return out, nil
}

func (f *fakePunchRepo) ActiveEmployeeIDs(_ context.Context, since time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	for _, e := range f.events {
		if !e.Timestamp.Before(since) {
			seen[e.EmployeeID] = true
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakePunchRepo) Update(_ context.Context, event punch.PunchEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.events {
		if f.events[i].ID == event.ID {
			f.events[i] = event
			return nil
		}
	}
	return punch.ErrPunchNotFound
}

func (f *fakePunchRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return punch.ErrPunchNotFound
}

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
	out := make([]dealership.Shop, 0, len(f.shops))
	for _, s := range f.shops {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeDirectory struct {
	employees map[string]employee.Employee
	assigned  map[string][]string
}

func (f *fakeDirectory) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeDirectory) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDirectory) AssignedDealerships(_ context.Context, id string) ([]string, error) {
	return f.assigned[id], nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	records []audit.TimeChange
}

func (f *fakeAuditRepo) Create(_ context.Context, change audit.TimeChange) (audit.TimeChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	change.ID = fmt.Sprintf("audit-%d", len(f.records)+1)
	change.CreatedAt = time.Now()
	f.records = append(f.records, change)
	return change, nil
}

func (f *fakeAuditRepo) ListByEmployee(_ context.Context, employeeID string, limit int) ([]audit.TimeChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []audit.TimeChange
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		if f.records[i].EmployeeID == employeeID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakeAuditRepo) ListAutoStops(_ context.Context, limit int) ([]audit.TimeChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []audit.TimeChange
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		if f.records[i].AdminID == audit.SystemAdminID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}
