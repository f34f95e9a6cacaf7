package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	calc := Default()
	tests := []struct {
		name     string
		quantity int
		sameDay  bool
		want     string
	}{
		{name: "one later", quantity: 1, want: "2.00"},
		{name: "six later", quantity: 6, want: "12.00"},
		{name: "twelve same day", quantity: 12, sameDay: true, want: "27.00"},
		{name: "nothing same day", quantity: 0, sameDay: true, want: "3.00"},
		{name: "negative quantity", quantity: -4, want: "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, calc.Total(tt.quantity, tt.sameDay).StringFixed(2))
		})
	}
}

func TestTotalFractionalPrices(t *testing.T) {
	calc := Calculator{
		UnitPrice:        decimal.RequireFromString("0.10"),
		SameDaySurcharge: decimal.RequireFromString("0.20"),
	}
	// 3 * 0.10 + 0.20 is exact in decimal arithmetic.
	require.True(t, calc.Total(3, true).Equal(decimal.RequireFromString("0.5")))
}

func TestFormat(t *testing.T) {
	require.Equal(t, "$12.00", Format(decimal.NewFromInt(12), "$"))
	require.Equal(t, "€0.50", Format(decimal.RequireFromString("0.5"), "€"))
	require.Equal(t, "-$1.50", Format(decimal.RequireFromString("-1.5"), "$"))
	require.Equal(t, "$0.00", Format(decimal.Zero, "$"))
	require.Equal(t, "Subtotal $2.00", Label(Format(decimal.NewFromInt(2), "$")))
}
