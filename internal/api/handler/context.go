package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agricert/farmer-certification/internal/api/middleware"
)

// ctxIdentity extracts the token payload injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing subject or
// role means the middleware was skipped or bypassed, so the request is
// rejected as unauthenticated rather than trusted.
func ctxIdentity(c echo.Context) (subject, role string, err error) {
	subject, _ = c.Get(middleware.ContextSubject).(string)
	role, _ = c.Get(middleware.ContextRole).(string)
	if subject == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, role, nil
}
