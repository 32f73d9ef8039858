// Package service implements the per-vertical search services. Mock
// verticals (hotels, trains, itineraries) synthesize results from
// reference tables; live verticals (flights, cars) map criteria onto
// third-party API calls.
package service

import (
	"fmt"
	"math"
)

// Round2 rounds a currency amount half up to two decimal places. All
// derived price fields go through this single policy.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatMoney renders an amount as "USD 123.45".
func FormatMoney(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// apiPrice is the Booking.com price object: units plus billionths.
type apiPrice struct {
	CurrencyCode string `json:"currencyCode"`
	Units        int64  `json:"units"`
	Nanos        int64  `json:"nanos"`
}

// value converts the units/nanos pair to a float amount.
func (p *apiPrice) value() float64 {
	return float64(p.Units) + float64(p.Nanos)/1e9
}

// formatAPIPrice renders a price object, or "N/A" when absent.
func formatAPIPrice(p *apiPrice) string {
	if p == nil {
		return "N/A"
	}
	currency := p.CurrencyCode
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%s %.2f", currency, p.value())
}
