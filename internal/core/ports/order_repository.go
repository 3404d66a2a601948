package ports

import (
	"context"

	"github.com/artesania/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
//
// Owner scoping is part of the query itself, never a post-filter: a lookup
// under the wrong owner behaves exactly like a lookup for a missing order,
// so record existence never leaks across accounts.
type OrderRepository interface {
	// FindByOwnerAndID retrieves a single order matching both owner and id.
	FindByOwnerAndID(ctx context.Context, owner, id string) (*domain.Order, error)
	// ListByOwner returns all orders of the owner. When includeItems is
	// false, line items are omitted from the result.
	ListByOwner(ctx context.Context, owner string, includeItems bool) ([]domain.Order, error)
	// Stage buffers an order for persistence without writing it.
	Stage(ctx context.Context, order *domain.Order) error
	// Commit persists all staged orders atomically; on failure nothing
	// staged is considered created.
	Commit(ctx context.Context) error
}
