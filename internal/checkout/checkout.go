// Package checkout turns a cart into the order message handed off to
// WhatsApp. Formatting is pure: the caller decides what to do with the
// message and the deep link.
package checkout

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dojodoskages/storefront/internal/models"
	"github.com/dojodoskages/storefront/internal/validate"
)

var contactPattern = regexp.MustCompile(`^[0-9\s()\-]+$`)

// Customer is the checkout form input.
type Customer struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
}

// Validate checks the checkout form. Failures are field-tagged so the
// caller can surface them next to the right input; nothing is mutated
// on failure.
func Validate(c Customer) validate.Errors {
	var errs validate.Errors

	name := strings.TrimSpace(c.Name)
	if utf8.RuneCountInString(name) < 2 {
		errs = append(errs, validate.FieldError{Field: "name", Message: "Nome deve ter pelo menos 2 caracteres"})
	} else if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, validate.FieldError{Field: "name", Message: "Nome muito longo"})
	}

	contact := strings.TrimSpace(c.WhatsApp)
	if len(contact) < 10 || len(contact) > 15 {
		errs = append(errs, validate.FieldError{Field: "whatsapp", Message: "WhatsApp inválido"})
	} else if !contactPattern.MatchString(contact) {
		errs = append(errs, validate.FieldError{Field: "whatsapp", Message: "Apenas números são permitidos"})
	}

	return errs
}

// FormatMessage builds the order message: header, customer, one bullet
// per line, grand total. Deterministic for a given cart.
func FormatMessage(storeName string, c Customer, lines []models.CartLine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🥷 *NOVO PEDIDO - %s*\n\n", storeName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", strings.TrimSpace(c.Name))
	fmt.Fprintf(&b, "*WhatsApp:* %s\n\n", strings.TrimSpace(c.WhatsApp))
	b.WriteString("*Itens:*\n")

	var total int64
	for _, l := range lines {
		sub := l.SubtotalCents()
		total += sub
		fmt.Fprintf(&b, "• %s (Tam: %s) - Qtd: %d - R$ %s\n",
			l.ProductName, l.Size, l.Quantity, FormatCents(sub))
	}

	fmt.Fprintf(&b, "\n*Total:* R$ %s\n\n---\nPedido realizado pelo site.", FormatCents(total))
	return b.String()
}

// Link builds the wa.me deep link for the message. Opening it is the
// caller's business.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
