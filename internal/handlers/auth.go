package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dojodoskages/storefront/internal/logging"
	mwauth "github.com/dojodoskages/storefront/internal/middleware/auth"
	"github.com/dojodoskages/storefront/internal/session"
)

type AuthHandler struct {
	Sessions *session.Store
}

func CreateCookie(name, value, path string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Login opens the shared admin session. The rejection is deliberately
// generic: nothing beyond "incorrect" leaks out.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, ok := h.Sessions.Login(req.Password)
	if !ok {
		l.Warn("admin_login_rejected")
		return echo.NewHTTPError(http.StatusUnauthorized, "Senha incorreta")
	}

	c.SetCookie(CreateCookie(mwauth.CookieName, token, "/", time.Now().Add(session.TokenTTL)))
	l.Info("admin_logged_in")

	return c.JSON(http.StatusOK, echo.Map{"authenticated": true})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.Sessions.Logout()

	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(CreateCookie(mwauth.CookieName, "", "/", expired))

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
