package sample

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jask/cupcake/internal/config"
	"github.com/jask/cupcake/internal/database/repository"
	"github.com/jask/cupcake/internal/order"
)

// Submitter persists one order.
type Submitter interface {
	Submit(ctx context.Context, o order.Order) (repository.Order, error)
}

// Seed sends n sample orders built from the menu. Each order is priced by a
// fresh order.State, so the stored prices match what the flow would charge.
// A nil rng uses a random seed.
func Seed(ctx context.Context, s Submitter, menu config.MenuConfig, opts order.Options, n int, rng *rand.Rand) ([]repository.Order, error) {
	if n < 0 {
		return nil, fmt.Errorf("seed: count must not be negative, got %d", n)
	}
	if len(menu.Flavors) == 0 || len(menu.Quantities) == 0 {
		return nil, fmt.Errorf("seed: menu has no flavors or quantities")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	out := make([]repository.Order, 0, n)
	for i := 0; i < n; i++ {
		state := order.NewState(opts)
		pickups := state.PickupOptions()
		state.SetQuantity(menu.Quantities[rng.Intn(len(menu.Quantities))].Count)
		state.SetFlavor(menu.Flavors[rng.Intn(len(menu.Flavors))])
		state.SetDate(pickups[rng.Intn(len(pickups))])

		row, err := s.Submit(ctx, state.Order())
		if err != nil {
			return out, fmt.Errorf("seed order %d: %w", i, err)
		}
		out = append(out, row)
	}
	return out, nil
}
