package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dojodoskages/storefront/internal/models"
)

func TestValidateRejectsShortName(t *testing.T) {
	errs := Validate(Customer{Name: "K", WhatsApp: "(11) 98888-7777"})
	require.Len(t, errs, 1)
	require.Equal(t, "name", errs[0].Field)
	require.Equal(t, "Nome deve ter pelo menos 2 caracteres", errs[0].Message)
}

func TestValidateRejectsLettersInContact(t *testing.T) {
	errs := Validate(Customer{Name: "Kenji Sato", WhatsApp: "11 ABCD-7777"})
	require.Len(t, errs, 1)
	require.Equal(t, "whatsapp", errs[0].Field)
	require.Equal(t, "Apenas números são permitidos", errs[0].Message)
}

func TestValidateContactLength(t *testing.T) {
	require.NotEmpty(t, Validate(Customer{Name: "Kenji Sato", WhatsApp: "123"}))
	require.NotEmpty(t, Validate(Customer{Name: "Kenji Sato", WhatsApp: "1234567890123456"}))
}

func TestValidateAccepts(t *testing.T) {
	require.Empty(t, Validate(Customer{Name: "Kenji Sato", WhatsApp: "(11) 98888-7777"}))
}

func TestValidateTrimsBeforeChecking(t *testing.T) {
	require.Empty(t, Validate(Customer{Name: "  Kenji Sato  ", WhatsApp: " (11) 98888-7777 "}))
	require.NotEmpty(t, Validate(Customer{Name: " K ", WhatsApp: "(11) 98888-7777"}))
}

func TestFormatCents(t *testing.T) {
	require.Equal(t, "129,90", FormatCents(12990))
	require.Equal(t, "659,70", FormatCents(65970))
	require.Equal(t, "0,05", FormatCents(5))
	require.Equal(t, "1000,00", FormatCents(100000))
}

func TestFormatMessage(t *testing.T) {
	lines := []models.CartLine{
		{ProductName: "Camiseta Samurai Spirit", Size: "M", Quantity: 2, ProductPriceCents: 12990},
		{ProductName: "Jaqueta Ronin", Size: "G", Quantity: 1, ProductPriceCents: 39990},
	}

	msg := FormatMessage("DOJO DOS KAGES", Customer{Name: "Kenji Sato", WhatsApp: "(11) 98888-7777"}, lines)

	require.Contains(t, msg, "🥷 *NOVO PEDIDO - DOJO DOS KAGES*")
	require.Contains(t, msg, "*Cliente:* Kenji Sato")
	require.Contains(t, msg, "*WhatsApp:* (11) 98888-7777")
	require.Contains(t, msg, "• Camiseta Samurai Spirit (Tam: M) - Qtd: 2 - R$ 259,80")
	require.Contains(t, msg, "• Jaqueta Ronin (Tam: G) - Qtd: 1 - R$ 399,90")
	require.Contains(t, msg, "*Total:* R$ 659,70")
	require.True(t, strings.HasSuffix(msg, "Pedido realizado pelo site."))
}

func TestFormatMessageIsDeterministic(t *testing.T) {
	lines := []models.CartLine{
		{ProductName: "Moletom Kage Shadow", Size: "P", Quantity: 1, ProductPriceCents: 24990},
	}
	cust := Customer{Name: "Kenji Sato", WhatsApp: "(11) 98888-7777"}

	first := FormatMessage("DOJO DOS KAGES", cust, lines)
	second := FormatMessage("DOJO DOS KAGES", cust, lines)
	require.Equal(t, first, second)
}

func TestLink(t *testing.T) {
	link := Link("5511999999999", "pedido: 2x camiseta")

	require.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?text="))
	require.NotContains(t, link, " ")
}
