// Package pricing computes and formats order subtotals.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Calculator prices an order from its quantity and pickup day.
type Calculator struct {
	UnitPrice        decimal.Decimal
	SameDaySurcharge decimal.Decimal
}

// Default mirrors the shop's list prices.
func Default() Calculator {
	return Calculator{
		UnitPrice:        decimal.NewFromInt(2),
		SameDaySurcharge: decimal.NewFromInt(3),
	}
}

// Total returns quantity * unit price, plus the surcharge for same-day pickup.
// Non-positive quantities price at zero, surcharge included.
func (c Calculator) Total(quantity int, sameDay bool) decimal.Decimal {
	total := decimal.Zero
	if quantity > 0 {
		total = c.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	}
	if sameDay {
		total = total.Add(c.SameDaySurcharge)
	}
	return total
}

// Format renders amount with two decimals after the currency symbol, e.g. "$12.00".
func Format(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// Label is the subtotal line shown under option lists.
func Label(formatted string) string {
	return "Subtotal " + formatted
}
