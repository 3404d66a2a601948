package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/artesania/storefront-api/internal/api/metrics"
	"github.com/artesania/storefront-api/internal/core/domain"
	"github.com/artesania/storefront-api/internal/core/ports"
)

// TokenSettings holds the externally supplied token parameters. None of
// these values are policy decisions of the service itself.
type TokenSettings struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService validates credentials and issues signed access tokens.
type AuthService struct {
	repo     ports.AuthRepository
	settings TokenSettings
	logger   zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, settings TokenSettings, logger zerolog.Logger) *AuthService {
	if settings.TTL <= 0 {
		settings.TTL = 30 * time.Minute
	}
	return &AuthService{repo: repo, settings: settings, logger: logger}
}

// CreateToken authenticates the credentials and returns a signed JWT.
//
// Malformed input fails with ErrInvalidRequest before the repository is
// touched. An unknown username and a wrong password both collapse into
// the same ErrInvalidCredentials so the response never reveals which
// check failed.
func (s *AuthService) CreateToken(ctx context.Context, input ports.CreateTokenInput) (*ports.TokenResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidRequest
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("user lookup failed")
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.settings.TTL)
	token, err := s.signToken(user, expiresAt)
	if err != nil {
		s.logger.Error().Err(err).Msg("token signing failed")
		return nil, err
	}

	metrics.TokensIssuedTotal.Inc()
	s.logger.Info().Str("username", user.Username).Time("expires_at", expiresAt).Msg("token issued")

	return &ports.TokenResult{
		Token:     token,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AuthService) signToken(user *domain.User, expiresAt time.Time) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iss":      s.settings.Issuer,
		"aud":      s.settings.Audience,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.settings.Secret))
}
