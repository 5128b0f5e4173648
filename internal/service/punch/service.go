package punch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/audit"
	"github.com/detailops/timeclock-backend/internal/domain/dealership"
	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
	"github.com/detailops/timeclock-backend/internal/pkg/utils"
	"github.com/detailops/timeclock-backend/internal/repository/postgresql"
)

// autoCloseNote tags the synthetic clock-out generated when an employee
// clocks in while a shift is still open.
const autoCloseNote = "Auto clock-out due to new clock-in."

// autoCloseGap keeps the new clock-in strictly after the synthetic
// clock-out so timestamp ordering is never ambiguous.
const autoCloseGap = 3 * time.Second

type PunchServiceImpl struct {
	db *database.DB
	punch.PunchRepository
	dealership.ShopRepository
	employee.Directory
	auditRepo audit.Repository

	lookbackDays int

	// Now is the clock; tests override it for determinism.
	Now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPunchService(
	db *database.DB,
	punchRepo punch.PunchRepository,
	shopRepo dealership.ShopRepository,
	directory employee.Directory,
	auditRepo audit.Repository,
	lookbackDays int,
) *PunchServiceImpl {
	return &PunchServiceImpl{
		db:              db,
		PunchRepository: punchRepo,
		ShopRepository:  shopRepo,
		Directory:       directory,
		auditRepo:       auditRepo,
		lookbackDays:    lookbackDays,
		Now:             time.Now,
		locks:           make(map[string]*sync.Mutex),
	}
}

// lockFor returns the per-employee mutex that serializes punch writes.
// Legality is decided by reading the latest punch and then writing, so two
// concurrent punches from one employee must never interleave.
func (s *PunchServiceImpl) lockFor(employeeID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[employeeID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[employeeID] = l
	}
	return l
}

// RecordPunch implements punch.PunchService.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, req punch.RecordPunchRequest) (punch.PunchResult, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResult{}, err
	}

	// Resolve candidate dealerships from the directory when the caller
	// did not supply them.
	candidates := req.DealershipIDs
	if len(candidates) == 0 {
		assigned, err := s.Directory.AssignedDealerships(ctx, req.EmployeeID)
		if err != nil {
			return punch.PunchResult{}, fmt.Errorf("failed to resolve assigned dealerships: %w", err)
		}
		candidates = assigned
	}

	// First assigned dealership whose geofence contains the location wins.
	// Dealerships without a shop record are silently skipped.
	var validShop *dealership.Shop
	for _, shopID := range candidates {
		shop, err := s.ShopRepository.GetByID(ctx, shopID)
		if err != nil {
			if errors.Is(err, dealership.ErrShopNotFound) {
				continue
			}
			return punch.PunchResult{}, fmt.Errorf("failed to look up dealership %s: %w", shopID, err)
		}
		if utils.IsWithinRadius(*req.Latitude, *req.Longitude, shop.CenterLat, shop.CenterLng, shop.RadiusMeters) {
			validShop = &shop
			break
		}
	}
	if validShop == nil {
		return punch.PunchResult{}, punch.ErrOutsideGeofence
	}

	lock := s.lockFor(req.EmployeeID)
	lock.Lock()
	defer lock.Unlock()

	// The request time is server-assigned and shared by the auto-close
	// synthetic event so shift arithmetic stays exact.
	requestTime := s.Now().UTC()
	newPunchTime := requestTime

	last, err := s.PunchRepository.GetLatestByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return punch.PunchResult{}, fmt.Errorf("failed to get latest punch: %w", err)
	}

	var autoClockOut *punch.PunchEvent
	if last != nil {
		if last.PunchType == req.PunchType {
			if req.PunchType == punch.TypeClockIn {
				// Recovery path: close the forgotten shift, then clock in.
				note := autoCloseNote
				autoClockOut = &punch.PunchEvent{
					EmployeeID:   req.EmployeeID,
					DealershipID: last.DealershipID,
					PunchType:    punch.TypeClockOut,
					Timestamp:    requestTime,
					AdminNotes:   &note,
				}
				newPunchTime = requestTime.Add(autoCloseGap)
			} else {
				return punch.PunchResult{}, punch.ErrDoubleClockOut
			}
		}
	} else if req.PunchType == punch.TypeClockOut {
		return punch.PunchResult{}, punch.ErrClockOutBeforeClockIn
	}

	newPunch := punch.PunchEvent{
		EmployeeID:   req.EmployeeID,
		DealershipID: validShop.ID,
		PunchType:    req.PunchType,
		Timestamp:    newPunchTime,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if req.PunchType == punch.TypeClockOut {
		newPunch.InjuredAtWork = req.InjuredAtWork
		newPunch.SafetySignature = req.SafetySignature
	}

	result := punch.PunchResult{}

	if autoClockOut == nil {
		created, err := s.PunchRepository.Create(ctx, newPunch)
		if err != nil {
			return punch.PunchResult{}, fmt.Errorf("failed to create punch: %w", err)
		}
		result.Punch = created
		return result, nil
	}

	// Auto-close writes two events in one transaction.
	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		closed, err := s.PunchRepository.Create(txCtx, *autoClockOut)
		if err != nil {
			return fmt.Errorf("failed to create auto clock-out: %w", err)
		}
		created, err := s.PunchRepository.Create(txCtx, newPunch)
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}
		result.AutoClockOut = &closed
		result.Punch = created
		return nil
	})
	if err != nil {
		return punch.PunchResult{}, err
	}

	result.Message = "Automatically clocked out previous shift."
	return result, nil
}

// Status implements punch.PunchService.
func (s *PunchServiceImpl) Status(ctx context.Context, employeeID string) (punch.StatusResponse, error) {
	last, err := s.PunchRepository.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		return punch.StatusResponse{}, fmt.Errorf("failed to get latest punch: %w", err)
	}

	resp := punch.StatusResponse{EmployeeID: employeeID}
	if last == nil {
		return resp, nil
	}
	ts := last.Timestamp
	resp.LastPunchAt = &ts
	if last.IsClockIn() {
		resp.ClockedIn = true
		resp.OpenShiftStart = &ts
	}
	return resp, nil
}

// RecentPunches implements punch.PunchService.
func (s *PunchServiceImpl) RecentPunches(ctx context.Context, employeeID string, limit int) ([]punch.PunchEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	events, err := s.PunchRepository.ListRecentByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent punches: %w", err)
	}
	return events, nil
}

// inTransaction runs fn inside a database transaction. In-memory test
// doubles run without a database handle and skip the transaction.
func (s *PunchServiceImpl) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}
