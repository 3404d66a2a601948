package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Principal is the authenticated identity resolved from the verified
// token claims. It is the only input permitted into ownership checks;
// identity fields arriving in request bodies are never consulted.
type Principal struct {
	Username string
	UserID   string
}

// ctxPrincipal extracts the identity injected by the Auth middleware.
// An empty username means the request reached a protected handler
// unauthenticated — reject with 401 before any service call.
func ctxPrincipal(c echo.Context) (Principal, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	return Principal{Username: username, UserID: userID}, nil
}
