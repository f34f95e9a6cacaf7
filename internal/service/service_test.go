package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/cupcake/internal/database"
	"github.com/jask/cupcake/internal/database/repository"
	"github.com/jask/cupcake/internal/order"
)

func setup(t *testing.T) (*OrderService, *MaintenanceService, *observer.ObservedLogs) {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	core, logs := observer.New(zap.InfoLevel)
	created := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	svc := &OrderService{
		Orders: repository.NewOrderRepo(db),
		Logger: zap.New(core),
		Now:    func() time.Time { return created },
	}
	return svc, &MaintenanceService{DB: db}, logs
}

func TestSubmitPersistsOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	svc, _, logs := setup(t)

	row, err := svc.Submit(ctx, order.Order{
		Quantity:   6,
		Flavor:     "Salted Caramel",
		PickupDate: "Tue Oct 20",
		Price:      decimal.RequireFromString("12.005"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, row.ID)
	require.Equal(t, int64(1201), row.PriceCents)

	stored, err := svc.Orders.Get(ctx, row.ID)
	require.NoError(t, err)
	require.Equal(t, "Salted Caramel", stored.Flavor)
	require.Equal(t, 6, stored.Quantity)
	require.True(t, stored.CreatedAt.Equal(row.CreatedAt))

	entries := logs.FilterMessage("order submitted").All()
	require.Len(t, entries, 1)
	require.Equal(t, row.ID, entries[0].ContextMap()["id"])
}

func TestSubmitRejectsIncompleteOrder(t *testing.T) {
	t.Parallel()

	svc, _, logs := setup(t)
	_, err := svc.Submit(context.Background(), order.Order{Quantity: 1, PickupDate: "Mon Oct 19"})
	require.ErrorIs(t, err, order.ErrIncomplete)
	require.Equal(t, 1, logs.FilterMessage("order rejected").Len())

	recent, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, recent)
}

func TestPurge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, maint, _ := setup(t)
	for _, flavor := range []string{"Vanilla", "Coffee"} {
		_, err := svc.Submit(ctx, order.Order{Quantity: 1, Flavor: flavor, PickupDate: "Mon Oct 19", Price: decimal.NewFromInt(5)})
		require.NoError(t, err)
	}

	removed, err := maint.Purge(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, recent)
}

func TestPurgeWithoutDB(t *testing.T) {
	_, err := (&MaintenanceService{}).Purge(context.Background())
	require.Error(t, err)
}
