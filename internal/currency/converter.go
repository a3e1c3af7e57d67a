// Package currency converts provider-currency amounts into the storefront's
// local display currency using a fixed exchange rate.
package currency

import "math"

// Default exchange rates, in local-currency units per unit of the provider's
// currency. Flight and car inventory come from endpoints quoting in different
// base currencies, hence the two rates.
const (
	DefaultFlightRate = 25500
	DefaultCarRate    = 25400
)

// Converter multiplies foreign-currency amounts by a fixed exchange rate.
type Converter struct {
	rate float64
}

// NewConverter creates a Converter with the given exchange rate.
// A non-positive rate falls back to 1 (identity conversion).
func NewConverter(rate float64) *Converter {
	if rate <= 0 {
		rate = 1
	}
	return &Converter{rate: rate}
}

// ToLocal converts a foreign-currency amount to a whole local-currency
// amount, rounded to the nearest unit.
func (c *Converter) ToLocal(amount float64) int64 {
	return int64(math.Round(amount * c.rate))
}

// Rate returns the converter's exchange rate.
func (c *Converter) Rate() float64 {
	return c.rate
}
