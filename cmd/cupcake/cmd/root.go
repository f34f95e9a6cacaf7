// Package cmd provides the CLI commands for cupcake.
package cmd

import (
	"context"
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/cupcake/internal/config"
	"github.com/jask/cupcake/internal/database"
	"github.com/jask/cupcake/internal/database/repository"
	"github.com/jask/cupcake/internal/logging"
	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/internal/pricing"
	"github.com/jask/cupcake/internal/service"
	"github.com/jask/cupcake/internal/tui"
)

type options struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the command tree. The root command runs the order TUI.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "cupcake",
		Short: "Order cupcakes from the terminal",
		Long: `cupcake walks through a cupcake order: quantity, flavor and pickup day,
then a summary that can be sent.

Examples:
  cupcake
  cupcake --config ./cupcake.toml
  cupcake orders --limit 5
  cupcake config init`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/cupcake/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newOrdersCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(versionCmd)
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// env is everything a command needs once config, logging and the store are up.
type env struct {
	cfg    config.Config
	log    *zap.Logger
	db     *sql.DB
	orders *service.OrderService
}

func (e *env) Close() {
	_ = e.log.Sync()
	if e.db != nil {
		_ = e.db.Close()
	}
}

func setup(ctx context.Context, opts *options) (*env, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	log.Debug("store ready", zap.String("path", cfg.Database.Path))
	return &env{
		cfg: cfg,
		log: log,
		db:  db,
		orders: &service.OrderService{
			Orders: repository.NewOrderRepo(db),
			Logger: log,
		},
	}, nil
}

func stateOptions(cfg config.Config) (order.Options, error) {
	unit, err := cfg.UnitPrice()
	if err != nil {
		return order.Options{}, err
	}
	surcharge, err := cfg.SameDaySurcharge()
	if err != nil {
		return order.Options{}, err
	}
	return order.Options{
		Calculator:     pricing.Calculator{UnitPrice: unit, SameDaySurcharge: surcharge},
		CurrencySymbol: cfg.UI.CurrencySymbol,
		DateFormat:     cfg.UI.DateFormat,
	}, nil
}

func newState(cfg config.Config) (*order.State, error) {
	opts, err := stateOptions(cfg)
	if err != nil {
		return nil, err
	}
	return order.NewState(opts), nil
}

func runTUI(ctx context.Context, opts *options) error {
	e, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	state, err := newState(e.cfg)
	if err != nil {
		return err
	}

	e.log.Info("starting order flow")
	p := tea.NewProgram(tui.New(ctx, e.cfg, state, e.orders, e.log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		e.log.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "cupcake version 0.1.0")
	},
}
