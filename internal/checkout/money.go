package checkout

import "fmt"

// FormatCents renders integer centavos as a price with two decimals and
// a comma separator ("12990" -> "129,90"), the store's locale.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}
