package dealership

import "context"

// ShopRepository provides the dealership/geofence directory.
type ShopRepository interface {
	// GetByID retrieves a shop; returns ErrShopNotFound when absent.
	GetByID(ctx context.Context, id string) (Shop, error)

	// List returns every registered shop.
	List(ctx context.Context) ([]Shop, error)
}
