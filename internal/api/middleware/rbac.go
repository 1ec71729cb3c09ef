package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electromart/marketplace-api/internal/core/domain"
)

// AdminOnly gates a route group behind the admin role claim. It runs after
// Auth, which already rejected missing or invalid tokens with 401; a valid
// token without the admin role gets 403.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "not authorized as admin")
			}
			return next(c)
		}
	}
}
