package cart

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CookieName = "cartID"

// visitorCartID reads the visitor's cart cookie, issuing one on the
// first cart operation. Carts are anonymous: the id is the only link
// between a browser and its lines.
func visitorCartID(c echo.Context) string {
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
