package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/cupcake/internal/database/repository"
	"github.com/jask/cupcake/internal/pricing"
	"github.com/jask/cupcake/internal/sample"
	"github.com/jask/cupcake/internal/service"
)

func newOrdersCmd(opts *options) *cobra.Command {
	var limit int
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "List sent orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			rows, err := e.orders.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ordersTable(rows, e.cfg.UI.CurrencySymbol))
			return nil
		},
	}
	ordersCmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of orders to show (0 for all)")

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete every stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			maint := &service.MaintenanceService{DB: e.db}
			removed, err := maint.Purge(cmd.Context())
			if err != nil {
				return err
			}
			e.log.Info("orders purged", zap.Int64("removed", removed))
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d orders.\n", removed)
			return nil
		},
	})
	var count int
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Send sample orders built from the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			stateOpts, err := stateOptions(e.cfg)
			if err != nil {
				return err
			}
			rows, err := sample.Seed(cmd.Context(), e.orders, e.cfg.Menu, stateOpts, count, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %d sample orders.\n", len(rows))
			return nil
		},
	}
	seedCmd.Flags().IntVar(&count, "count", 10, "number of orders to send")
	ordersCmd.AddCommand(seedCmd)
	return ordersCmd
}

func ordersTable(rows []repository.Order, symbol string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Sent", "Qty", "Flavor", "Pickup", "Price")
	for _, o := range rows {
		t.Row(
			shortID(o.ID),
			o.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(o.Quantity),
			o.Flavor,
			o.PickupDate,
			pricing.Format(decimal.New(o.PriceCents, -2), symbol),
		)
	}
	return t.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
