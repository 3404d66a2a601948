package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artesania/storefront-api/internal/core/domain"
	"github.com/artesania/storefront-api/internal/core/ports"
)

// AuthHandler exposes the token endpoint.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CreateToken authenticates credentials and issues an access token.
//
// @Summary      Create an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      createTokenRequest  true  "Login credentials"
// @Success      201   {object}  createTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/token [post]
func (h *AuthHandler) CreateToken(c echo.Context) error {
	var req createTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.authService.CreateToken(c.Request().Context(), ports.CreateTokenInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid username or password"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, createTokenResponse{
		Token:      result.Token,
		Username:   result.Username,
		Expiration: result.ExpiresAt,
	})
}
