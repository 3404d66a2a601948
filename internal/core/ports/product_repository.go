package ports

import (
	"context"

	"github.com/artesania/storefront-api/internal/core/domain"
)

// ProductRepository defines read access to the shared catalog.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
}

// CatalogCache is a best-effort cache in front of the product catalog.
// Get reports a miss with ok=false; errors from either method must never
// fail a catalog request.
type CatalogCache interface {
	Get(ctx context.Context) (products []domain.Product, ok bool, err error)
	Set(ctx context.Context, products []domain.Product) error
}
