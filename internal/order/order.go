// Package order holds the in-progress cupcake order shared by the flow screens.
package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/cupcake/internal/pricing"
)

// ErrIncomplete is returned when an order is sent without quantity or flavor.
var ErrIncomplete = errors.New("order: quantity and flavor are required")

// PickupDays is how many consecutive days, starting today, can be chosen.
const PickupDays = 4

// Order is a snapshot of the customer's choices.
type Order struct {
	Quantity   int
	Flavor     string
	PickupDate string
	Price      decimal.Decimal
}

// Validate reports ErrIncomplete for orders that cannot be sent.
func (o Order) Validate() error {
	if o.Quantity <= 0 || o.Flavor == "" || o.PickupDate == "" {
		return ErrIncomplete
	}
	return nil
}

// Options configures a State.
type Options struct {
	Calculator     pricing.Calculator
	CurrencySymbol string
	DateFormat     string
	Now            func() time.Time
}

// State is the mutable order behind the flow. Every setter reprices.
type State struct {
	calc    pricing.Calculator
	symbol  string
	pickups []string
	order   Order
}

// NewState computes the pickup options once, from the injected clock, and
// starts with a reset order.
func NewState(opts Options) *State {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DateFormat == "" {
		opts.DateFormat = "Mon Jan 2"
	}
	s := &State{
		calc:    opts.Calculator,
		symbol:  opts.CurrencySymbol,
		pickups: pickupOptions(opts.Now(), opts.DateFormat),
	}
	s.Reset()
	return s
}

func pickupOptions(now time.Time, layout string) []string {
	out := make([]string, 0, PickupDays)
	for i := 0; i < PickupDays; i++ {
		out = append(out, now.AddDate(0, 0, i).Format(layout))
	}
	return out
}

// PickupOptions returns a copy of the selectable pickup dates, today first.
func (s *State) PickupOptions() []string {
	return append([]string(nil), s.pickups...)
}

func (s *State) SetQuantity(n int) {
	s.order.Quantity = n
	s.reprice()
}

func (s *State) SetFlavor(flavor string) {
	s.order.Flavor = flavor
}

func (s *State) SetDate(date string) {
	s.order.PickupDate = date
	s.reprice()
}

// Reset clears quantity and flavor and moves pickup back to today. The price
// stays zero until a quantity is chosen.
func (s *State) Reset() {
	s.order = Order{Price: decimal.Zero}
	if len(s.pickups) > 0 {
		s.order.PickupDate = s.pickups[0]
	}
}

func (s *State) Order() Order {
	return s.order
}

// Subtotal is the formatted current price.
func (s *State) Subtotal() string {
	return pricing.Format(s.order.Price, s.symbol)
}

func (s *State) sameDay() bool {
	return len(s.pickups) > 0 && s.order.PickupDate == s.pickups[0]
}

func (s *State) reprice() {
	s.order.Price = s.calc.Total(s.order.Quantity, s.sameDay())
}
