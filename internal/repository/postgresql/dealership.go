package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/detailops/timeclock-backend/internal/domain/dealership"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
)

type dealershipRepository struct {
	db *database.DB
}

// GetByID implements dealership.ShopRepository.
func (d *dealershipRepository) GetByID(ctx context.Context, id string) (dealership.Shop, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, center_lat, center_lng, radius_meters
		FROM dealerships
		WHERE id = $1
	`

	var shop dealership.Shop
	err := q.QueryRow(ctx, query, id).Scan(
		&shop.ID, &shop.Name, &shop.CenterLat, &shop.CenterLng, &shop.RadiusMeters,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dealership.Shop{}, dealership.ErrShopNotFound
		}
		return dealership.Shop{}, fmt.Errorf("failed to get dealership: %w", err)
	}
	return shop, nil
}

// List implements dealership.ShopRepository.
func (d *dealershipRepository) List(ctx context.Context) ([]dealership.Shop, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, center_lat, center_lng, radius_meters
		FROM dealerships
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dealerships: %w", err)
	}
	defer rows.Close()

	var shops []dealership.Shop
	for rows.Next() {
		var shop dealership.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.CenterLat, &shop.CenterLng, &shop.RadiusMeters); err != nil {
			return nil, fmt.Errorf("failed to scan dealership: %w", err)
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

func NewDealershipRepository(db *database.DB) dealership.ShopRepository {
	return &dealershipRepository{db: db}
}
