package domain

import "fmt"

// FormatPrice renders an amount for display, e.g. "15.00 USD".
func FormatPrice(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}
