package ports

import (
	"context"
	"time"
)

// CreateTokenInput carries the login credentials.
type CreateTokenInput struct {
	Username string
	Password string
}

// TokenResult is returned on a successful login. The token is
// self-contained: validity is determined by signature and expiry alone,
// no session record exists server-side.
type TokenResult struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

type AuthService interface {
	CreateToken(ctx context.Context, input CreateTokenInput) (*TokenResult, error)
}
