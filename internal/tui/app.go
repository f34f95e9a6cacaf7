package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/cupcake/internal/config"
	"github.com/jask/cupcake/internal/database/repository"
	"github.com/jask/cupcake/internal/logging"
	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/internal/tui/selectoptions"
)

// OrderSubmitter persists a finished order.
type OrderSubmitter interface {
	Submit(ctx context.Context, o order.Order) (repository.Order, error)
}

type screenID string

const (
	screenStart   screenID = "start"
	screenFlavor  screenID = "flavor"
	screenPickup  screenID = "pickup"
	screenSummary screenID = "summary"
)

var screenTitles = map[screenID]string{
	screenStart:   "Order Cupcakes",
	screenFlavor:  "Choose Flavor",
	screenPickup:  "Choose Pickup Date",
	screenSummary: "Order Summary",
}

// App is the root model: a back stack of screens over one order.
type App struct {
	ctx    context.Context
	cfg    config.Config
	state  *order.State
	orders OrderSubmitter
	log    *zap.Logger
	keys   *KeyRegistry

	stack       []screenID
	startCursor int
	flavor      selectoptions.Model
	pickup      selectoptions.Model

	sending   bool
	status    string
	statusErr bool
	width     int
	height    int
}

// New builds the app. orders may be nil, in which case sending reports an error.
func New(ctx context.Context, cfg config.Config, state *order.State, orders OrderSubmitter, log *zap.Logger) *App {
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		state:  state,
		orders: orders,
		log:    logging.OrNop(log),
		keys:   NewKeyRegistry(),
		stack:  []screenID{screenStart},
	}
	a.flavor = a.newFlavorScreen()
	a.pickup = a.newPickupScreen()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) current() screenID {
	return a.stack[len(a.stack)-1]
}

func (a *App) push(id screenID) {
	switch id {
	case screenFlavor:
		a.flavor = a.newFlavorScreen()
	case screenPickup:
		a.pickup = a.newPickupScreen()
	}
	a.stack = append(a.stack, id)
	a.log.Debug("navigate", zap.String("screen", string(id)), zap.Int("depth", len(a.stack)))
}

// pop keeps the popped-to screen's state; Start is never popped.
func (a *App) pop() {
	if len(a.stack) <= 1 {
		return
	}
	a.stack = a.stack[:len(a.stack)-1]
	a.refreshSubtotals()
}

// restart resets the order and clears the back stack.
func (a *App) restart() {
	a.state.Reset()
	a.stack = []screenID{screenStart}
	a.flavor = a.newFlavorScreen()
	a.pickup = a.newPickupScreen()
}

func (a *App) newFlavorScreen() selectoptions.Model {
	m := selectoptions.New(a.cfg.Menu.Flavors, a.state.Subtotal(), selectoptions.Callbacks{
		OnSelectionChanged: func(label string) tea.Msg { return flavorChangedMsg(label) },
		OnCancel:           func() tea.Msg { return cancelOrderMsg{} },
		OnNext:             func() tea.Msg { return nextMsg{from: screenFlavor} },
	})
	m.SetWidth(a.bodyWidth())
	return m
}

func (a *App) newPickupScreen() selectoptions.Model {
	m := selectoptions.New(a.state.PickupOptions(), a.state.Subtotal(), selectoptions.Callbacks{
		OnSelectionChanged: func(label string) tea.Msg { return pickupChangedMsg(label) },
		OnCancel:           func() tea.Msg { return cancelOrderMsg{} },
		OnNext:             func() tea.Msg { return nextMsg{from: screenPickup} },
	})
	m.SetWidth(a.bodyWidth())
	return m
}

func (a *App) refreshSubtotals() {
	sub := a.state.Subtotal()
	a.flavor.SetSubtotal(sub)
	a.pickup.SetSubtotal(sub)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = "Error: " + err.Error()
	a.statusErr = true
}

func (a *App) submitOrder() tea.Cmd {
	if a.orders == nil {
		return func() tea.Msg { return errMsg{errNoOrderStore} }
	}
	o := a.state.Order()
	ctx := a.ctx
	orders := a.orders
	return func() tea.Msg {
		row, err := orders.Submit(ctx, o)
		if err != nil {
			return errMsg{err}
		}
		return orderSentMsg{order: row}
	}
}
