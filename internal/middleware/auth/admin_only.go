package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dojodoskages/storefront/internal/session"
)

const CookieName = "adminToken"

// AdminOnly gates catalog mutations behind the shared admin session.
// The stores themselves never check this; the gate lives here at the
// transport boundary.
func AdminOnly(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || !sessions.Verify(cookie.Value) {
				return echo.NewHTTPError(http.StatusUnauthorized, "não autorizado")
			}
			return next(c)
		}
	}
}
