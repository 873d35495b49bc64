package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both claims must be
// non-empty (presence proves the middleware ran).
func ctxIdentity(c echo.Context) (authz.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return authz.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return authz.Identity{UserID: userID, Role: domain.Role(role)}, nil
}
