package ports

import (
	"context"

	"github.com/artesania/storefront-api/internal/core/domain"
)

// CatalogService lists the public product catalog. No authorization step:
// the catalog is readable by anyone.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
