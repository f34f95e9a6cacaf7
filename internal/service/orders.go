package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/cupcake/internal/database"
	"github.com/jask/cupcake/internal/database/repository"
	"github.com/jask/cupcake/internal/logging"
	"github.com/jask/cupcake/internal/order"
)

// OrderService records orders sent from the summary screen.
type OrderService struct {
	Orders *repository.OrderRepo
	Logger *zap.Logger
	Now    func() time.Time
}

// Submit validates o, assigns an id and persists it.
func (s *OrderService) Submit(ctx context.Context, o order.Order) (repository.Order, error) {
	log := logging.OrNop(s.Logger)
	if err := o.Validate(); err != nil {
		log.Warn("order rejected", zap.Error(err), zap.Int("quantity", o.Quantity), zap.String("flavor", o.Flavor))
		return repository.Order{}, err
	}
	now := database.Now
	if s.Now != nil {
		now = s.Now
	}
	row := repository.Order{
		ID:         uuid.NewString(),
		Quantity:   o.Quantity,
		Flavor:     o.Flavor,
		PickupDate: o.PickupDate,
		PriceCents: o.Price.Shift(2).Round(0).IntPart(),
		CreatedAt:  now(),
	}
	if err := s.Orders.Insert(ctx, row); err != nil {
		log.Error("order insert failed", zap.Error(err))
		return repository.Order{}, fmt.Errorf("submit order: %w", err)
	}
	log.Info("order submitted",
		zap.String("id", row.ID),
		zap.Int("quantity", row.Quantity),
		zap.String("flavor", row.Flavor),
		zap.String("pickup_date", row.PickupDate),
		zap.Int64("price_cents", row.PriceCents),
	)
	return row, nil
}

// Recent lists the newest orders first.
func (s *OrderService) Recent(ctx context.Context, limit int) ([]repository.Order, error) {
	orders, err := s.Orders.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
