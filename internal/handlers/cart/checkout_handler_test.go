package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/dojodoskages/storefront/internal/events"
)

func TestCheckoutHappyPath(t *testing.T) {
	env := newTestEnv(t)
	shirt := env.seedProduct("Camiseta Samurai Spirit", 12990)
	jacket := env.seedProduct("Jaqueta Ronin", 39990)

	var orderEvents []map[string]any
	env.Bus.Subscribe(func(e events.Event) {
		if e.Topic == events.TopicOrders {
			orderEvents = append(orderEvents, e.Payload)
		}
	})

	for i := 0; i < 2; i++ {
		_, c := env.doJSONRequest(http.MethodPost, "/cart",
			map[string]string{"product_id": shirt.ID, "size": "M"})
		require.NoError(t, env.H.AddToCart(c))
	}
	_, c := env.doJSONRequest(http.MethodPost, "/cart",
		map[string]string{"product_id": jacket.ID, "size": "G"})
	require.NoError(t, env.H.AddToCart(c))

	rec, c := env.doJSONRequest(http.MethodPost, "/cart/checkout",
		map[string]string{"name": "Kenji Sato", "whatsapp": "(11) 98888-7777"})
	require.NoError(t, env.CO.Checkout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message     string `json:"message"`
		WhatsAppURL string `json:"whatsapp_url"`
		TotalCents  int64  `json:"total_cents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, int64(65970), resp.TotalCents)
	require.Contains(t, resp.Message, "• Camiseta Samurai Spirit (Tam: M) - Qtd: 2 - R$ 259,80")
	require.Contains(t, resp.Message, "• Jaqueta Ronin (Tam: G) - Qtd: 1 - R$ 399,90")
	require.Contains(t, resp.Message, "*Total:* R$ 659,70")
	require.Contains(t, resp.WhatsAppURL, "https://wa.me/5511999999999?text=")

	// success clears the cart and reports the order
	lines, err := env.Carts.Get(context.Background(), testCartID)
	require.NoError(t, err)
	require.Empty(t, lines)

	require.Len(t, orderEvents, 1)
	require.Equal(t, "order_created", orderEvents[0]["type"])
	require.Equal(t, int64(65970), orderEvents[0]["total_cents"])
}

func TestCheckoutValidationLeavesCartUntouched(t *testing.T) {
	env := newTestEnv(t)
	prod := env.seedProduct("Camiseta Samurai Spirit", 12990)

	_, c := env.doJSONRequest(http.MethodPost, "/cart",
		map[string]string{"product_id": prod.ID, "size": "M"})
	require.NoError(t, env.H.AddToCart(c))

	rec, c := env.doJSONRequest(http.MethodPost, "/cart/checkout",
		map[string]string{"name": "K", "whatsapp": "11 ABCD-7777"})
	require.NoError(t, env.CO.Checkout(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Nome deve ter pelo menos 2 caracteres", resp.Errors["name"])
	require.Equal(t, "Apenas números são permitidos", resp.Errors["whatsapp"])

	lines, err := env.Carts.Get(context.Background(), testCartID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/cart/checkout",
		map[string]string{"name": "Kenji Sato", "whatsapp": "(11) 98888-7777"})
	err := env.CO.Checkout(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}
