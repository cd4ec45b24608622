package cart

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dojodoskages/storefront/internal/logging"
	"github.com/dojodoskages/storefront/internal/repo"
	"github.com/dojodoskages/storefront/internal/validate"
)

type CartHandler struct {
	Carts   *repo.Cart
	Catalog *repo.Catalog
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	cartID := visitorCartID(c)
	lines, err := h.Carts.Get(ctx, cartID)
	if err != nil {
		l.Error("get_cart_failed", "cartID", cartID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read cart")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":        lines,
		"total_cents": repo.TotalCents(lines),
	})
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	req.Size = strings.TrimSpace(req.Size)
	if req.Size == "" {
		errs := validate.Errors{{Field: "size", Message: "Selecione um tamanho"}}
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs.Map()})
	}

	prod, err := h.Catalog.Get(ctx, req.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	cartID := visitorCartID(c)
	line, err := h.Carts.Add(ctx, cartID, prod, req.Size)
	if err != nil {
		l.Error("add_to_cart_failed", "cartID", cartID, "productID", req.ProductID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add to cart")
	}

	return c.JSON(http.StatusOK, line)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cartID := visitorCartID(c)
	if err := h.Carts.SetQuantity(ctx, cartID, req.ProductID, req.Size, req.Quantity); err != nil {
		l.Error("update_quantity_failed", "cartID", cartID, "productID", req.ProductID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart")
	}

	lines, err := h.Carts.Get(ctx, cartID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read cart")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":        lines,
		"total_cents": repo.TotalCents(lines),
	})
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	productID := c.Param("product_id")
	size := c.QueryParam("size")

	cartID := visitorCartID(c)
	if err := h.Carts.Remove(ctx, cartID, productID, size); err != nil {
		l.Error("remove_from_cart_failed", "cartID", cartID, "productID", productID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove from cart")
	}

	lines, err := h.Carts.Get(ctx, cartID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read cart")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":        lines,
		"total_cents": repo.TotalCents(lines),
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	cartID := visitorCartID(c)
	if err := h.Carts.Clear(ctx, cartID); err != nil {
		l.Error("clear_cart_failed", "cartID", cartID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	return c.NoContent(http.StatusNoContent)
}
