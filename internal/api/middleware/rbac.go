package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/api/metrics"
	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// RBAC enforces role-based access control. The role claim must match one of
// the allowed roles exactly; unknown or missing roles never pass.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make([]domain.Role, 0, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed = append(allowed, domain.Role(r))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			role, _ := c.Get("role").(string)

			id := authz.Identity{UserID: userID, Role: domain.Role(role)}
			if err := authz.RequireRole(id, allowed...); err != nil {
				metrics.AuthzDeniedTotal.WithLabelValues("role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
