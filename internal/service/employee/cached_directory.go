package employee

import (
	"context"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/pkg/cache"
)

const listKey = "__all__"

// CachedDirectory decorates an employee.Directory with a read-through TTL
// cache. The directory lives in an external system and every punch and
// report reads it, so hot lookups are served from memory and concurrent
// cold misses collapse into one upstream call.
type CachedDirectory struct {
	inner employee.Directory

	byID *cache.TTL[employee.Employee]
	list *cache.TTL[[]employee.Employee]
}

func NewCachedDirectory(inner employee.Directory, size int, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		inner: inner,
		byID:  cache.NewTTL[employee.Employee](size, ttl),
		list:  cache.NewTTL[[]employee.Employee](1, ttl),
	}
}

// GetByID implements employee.Directory.
func (d *CachedDirectory) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return d.byID.Get(id, func() (employee.Employee, error) {
		return d.inner.GetByID(ctx, id)
	})
}

// List implements employee.Directory.
func (d *CachedDirectory) List(ctx context.Context) ([]employee.Employee, error) {
	return d.list.Get(listKey, func() ([]employee.Employee, error) {
		return d.inner.List(ctx)
	})
}

// AssignedDealerships implements employee.Directory.
func (d *CachedDirectory) AssignedDealerships(ctx context.Context, id string) ([]string, error) {
	emp, err := d.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return emp.DealershipIDs, nil
}

// Invalidate drops one employee and the full listing from the cache.
func (d *CachedDirectory) Invalidate(id string) {
	d.byID.Invalidate(id)
	d.list.Invalidate(listKey)
}
