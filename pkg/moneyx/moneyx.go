// Package moneyx formats monetary amounts kept as integer minor units
// (cents). Arithmetic on amounts stays plain int64; this package only owns
// presentation.
package moneyx

import (
	"strings"

	money "github.com/Rhymond/go-money"
)

// Format renders a minor-unit amount using the given ISO 4217 currency code,
// e.g. Format(123456, "USD") == "$1,234.56".
func Format(minor int64, currency string) string {
	return money.New(minor, currency).Display()
}

// SameCurrency reports whether the two codes resolve to the same currency.
func SameCurrency(a, b string) bool {
	a = strings.ToUpper(a)
	b = strings.ToUpper(b)
	ca := money.GetCurrency(a)
	cb := money.GetCurrency(b)
	if ca == nil || cb == nil {
		return a == b
	}
	return ca.Code == cb.Code
}
