package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogGateway is the backend's product listing.
type CatalogGateway interface {
	// ListProducts returns up to limit products in one call.
	ListProducts(ctx context.Context, limit int) ([]entity.ProductSnapshot, error)
}
