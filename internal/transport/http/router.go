package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/dojodoskages/storefront/internal/handlers"
	"github.com/dojodoskages/storefront/internal/handlers/cart"
	mwauth "github.com/dojodoskages/storefront/internal/middleware/auth"
	"github.com/dojodoskages/storefront/internal/session"
)

type Deps struct {
	Sessions        *session.Store
	AuthHandler     *handlers.AuthHandler
	ProductHandler  *handlers.ProductHandler
	CartHandler     *cart.CartHandler
	CheckoutHandler *cart.CheckoutHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/admin/login", d.AuthHandler.Login)
	v1.POST("/admin/logout", d.AuthHandler.Logout)

	admin := v1.Group("/admin", mwauth.AdminOnly(d.Sessions))

	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	products := v1.Group("/products")

	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	v1.GET("/collections", d.ProductHandler.GetCollections)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	cartg := v1.Group("/cart")

	cartg.GET("", d.CartHandler.GetCart)
	cartg.POST("", d.CartHandler.AddToCart)
	cartg.PATCH("/items", d.CartHandler.UpdateQuantity)
	cartg.DELETE("/items/:product_id", d.CartHandler.RemoveFromCart)
	cartg.DELETE("", d.CartHandler.ClearCart)
	cartg.POST("/checkout", d.CheckoutHandler.Checkout)
}
