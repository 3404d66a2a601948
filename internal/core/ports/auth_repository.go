package ports

import (
	"context"

	"github.com/artesania/storefront-api/internal/core/domain"
)

// AuthRepository defines the interface for user lookup during login.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
