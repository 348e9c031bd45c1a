package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agricert/farmer-certification/internal/core/ports"
)

// TokenHeader is the request header carrying the raw bearer token. The web
// client sends the JWT in a header literally named "token" (no Authorization
// scheme); this name must be preserved for compatibility.
const TokenHeader = "token"

// Context keys set by Auth for downstream handlers.
const (
	ContextSubject = "sub"
	ContextEmail   = "email"
	ContextRole    = "role"
)

// Auth validates the bearer token and injects its payload into the request
// context. A missing token is 401; a malformed, mis-signed or expired token
// is 403.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(TokenHeader)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			payload, err := tokens.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(ContextSubject, payload.Subject)
			c.Set(ContextEmail, payload.Email)
			c.Set(ContextRole, payload.Role)

			return next(c)
		}
	}
}
