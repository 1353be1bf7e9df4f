package valueobjects

import "regexp"

// amountPattern accepts whole numbers, optionally suffixed with ".00".
var amountPattern = regexp.MustCompile(`^\d+(\.00)?$`)

// MonetaryValue is an amount as the gateway expects it: a decimal string plus an
// ISO 4217 currency code (IQD for most merchants).
type MonetaryValue struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// IsValidAmount reports whether amount is a whole number, optionally ending in ".00".
// Fractional values such as "500.50" are rejected by the gateway.
func IsValidAmount(amount string) bool {
	return amountPattern.MatchString(amount)
}

func (m MonetaryValue) String() string {
	return m.Amount + " " + m.Currency
}
