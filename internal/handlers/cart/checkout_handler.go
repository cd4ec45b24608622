package cart

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dojodoskages/storefront/internal/checkout"
	"github.com/dojodoskages/storefront/internal/events"
	"github.com/dojodoskages/storefront/internal/logging"
	"github.com/dojodoskages/storefront/internal/repo"
)

// CheckoutHandler finishes an order: it validates the customer form,
// renders the order message, clears the cart, and hands the wa.me link
// back to the caller. Opening the link happens client-side.
type CheckoutHandler struct {
	Carts *repo.Cart
	Bus   *events.Bus

	StoreName      string
	WhatsAppNumber string
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	var customer checkout.Customer
	if err := c.Bind(&customer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cartID := visitorCartID(c)
	lines, err := h.Carts.Get(ctx, cartID)
	if err != nil {
		l.Error("checkout_failed", "cartID", cartID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read cart")
	}
	if len(lines) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no items in cart")
	}

	// validation failure leaves the cart untouched
	if errs := checkout.Validate(customer); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs.Map()})
	}

	totalCents := repo.TotalCents(lines)
	message := checkout.FormatMessage(h.StoreName, customer, lines)
	link := checkout.Link(h.WhatsAppNumber, message)

	if err := h.Carts.Clear(ctx, cartID); err != nil {
		l.Error("checkout_clear_failed", "cartID", cartID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	h.Bus.Publish(events.Event{
		Topic: events.TopicOrders,
		Key:   cartID,
		Payload: map[string]any{
			"type":        "order_created",
			"cartID":      cartID,
			"items":       len(lines),
			"total_cents": totalCents,
		},
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":      message,
		"whatsapp_url": link,
		"total_cents":  totalCents,
	})
}
