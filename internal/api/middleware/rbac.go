package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces that the authenticated caller holds the given role.
// An empty role in context means Auth never ran, which is treated as
// unauthenticated rather than forbidden.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actual, _ := c.Get(ContextRole).(string)
			if actual == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if actual != role {
				return echo.NewHTTPError(http.StatusForbidden, role+" access required")
			}
			return next(c)
		}
	}
}
