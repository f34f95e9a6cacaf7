package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cupcake/internal/pricing"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
}

func newTestState() *State {
	return NewState(Options{
		Calculator:     pricing.Default(),
		CurrencySymbol: "$",
		Now:            fixedNow,
	})
}

func TestPickupOptionsStartToday(t *testing.T) {
	s := newTestState()
	require.Equal(t, []string{"Mon Oct 19", "Tue Oct 20", "Wed Oct 21", "Thu Oct 22"}, s.PickupOptions())

	// callers cannot mutate the internal list
	opts := s.PickupOptions()
	opts[0] = "tampered"
	require.Equal(t, "Mon Oct 19", s.PickupOptions()[0])
}

func TestPickupOptionsCustomLayout(t *testing.T) {
	s := NewState(Options{Calculator: pricing.Default(), DateFormat: "2006-01-02", Now: fixedNow})
	require.Equal(t, "2026-10-19", s.PickupOptions()[0])
	require.Equal(t, "2026-10-22", s.PickupOptions()[3])
}

func TestResetState(t *testing.T) {
	s := newTestState()
	o := s.Order()
	require.Equal(t, 0, o.Quantity)
	require.Empty(t, o.Flavor)
	require.Equal(t, "Mon Oct 19", o.PickupDate)
	require.Equal(t, "$0.00", s.Subtotal())
}

func TestSettersReprice(t *testing.T) {
	s := newTestState()

	s.SetQuantity(6)
	require.Equal(t, "$15.00", s.Subtotal(), "six cupcakes today include the same-day surcharge")

	s.SetDate("Tue Oct 20")
	require.Equal(t, "$12.00", s.Subtotal())

	s.SetFlavor("Coffee")
	require.Equal(t, "$12.00", s.Subtotal())

	s.SetQuantity(1)
	require.Equal(t, "$2.00", s.Subtotal())

	s.SetDate("Mon Oct 19")
	require.Equal(t, "$5.00", s.Subtotal())

	o := s.Order()
	require.Equal(t, 1, o.Quantity)
	require.Equal(t, "Coffee", o.Flavor)
	require.Equal(t, "Mon Oct 19", o.PickupDate)

	s.Reset()
	require.Equal(t, "$0.00", s.Subtotal())
	require.Empty(t, s.Order().Flavor)
}

func TestValidate(t *testing.T) {
	s := newTestState()
	require.ErrorIs(t, s.Order().Validate(), ErrIncomplete)

	s.SetQuantity(12)
	require.ErrorIs(t, s.Order().Validate(), ErrIncomplete)

	s.SetFlavor("Vanilla")
	require.NoError(t, s.Order().Validate())
}
