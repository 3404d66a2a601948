package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/artesania/storefront-api/internal/api/metrics"
	"github.com/artesania/storefront-api/internal/core/domain"
	"github.com/artesania/storefront-api/internal/core/ports"
)

// CatalogService serves the public product catalog, fronted by a
// best-effort cache.
type CatalogService struct {
	repo   ports.ProductRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

// NewCatalogService returns a CatalogService. cache may be nil, in which
// case every request goes to the repository.
func NewCatalogService(repo ports.ProductRepository, cache ports.CatalogCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

// ListProducts returns all catalog entries. An empty catalog is a valid
// result with an empty slice. Cache failures are logged and ignored;
// only a repository failure fails the request.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
		} else if ok {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return products, nil
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("product list failed")
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}

	return products, nil
}
