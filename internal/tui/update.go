package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/cupcake/internal/tui/mouse"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.flavor.SetWidth(a.bodyWidth())
		a.pickup.SetWidth(a.bodyWidth())
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		return a.handleMouse(m)
	case flavorChangedMsg:
		a.state.SetFlavor(string(m))
		a.refreshSubtotals()
		return a, nil
	case pickupChangedMsg:
		a.state.SetDate(string(m))
		a.refreshSubtotals()
		return a, nil
	case cancelOrderMsg:
		a.cancelOrder()
		return a, nil
	case nextMsg:
		switch m.from {
		case screenFlavor:
			a.push(screenPickup)
		case screenPickup:
			a.push(screenSummary)
		}
		return a, nil
	case orderSentMsg:
		a.sending = false
		a.restart()
		a.setStatus(fmt.Sprintf("Order %s sent", shortID(m.order.ID)))
		return a, nil
	case errMsg:
		a.sending = false
		a.log.Error("order flow error", zap.Error(m.err))
		a.setError(m.err)
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	switch a.current() {
	case screenFlavor, screenPickup:
		// Global keys first; the option screen owns everything else.
		if b := a.keys.Lookup(keyName, scopeGlobal); b != nil {
			return a.applyGlobal(b.Action)
		}
		return a.updateOptions(msg)
	case screenStart:
		b := a.keys.Lookup(keyName, scopeStart)
		if b == nil {
			return a, nil
		}
		switch b.Action {
		case actionNavigate:
			a.moveStartCursor(keyName)
			return a, nil
		case actionSelect:
			a.chooseQuantity(a.startCursor)
			return a, nil
		}
		return a.applyGlobal(b.Action)
	case screenSummary:
		b := a.keys.Lookup(keyName, scopeSummary)
		if b == nil {
			return a, nil
		}
		switch b.Action {
		case actionSend:
			return a, a.send()
		case actionCancel:
			a.cancelOrder()
			return a, nil
		}
		return a.applyGlobal(b.Action)
	}
	return a, nil
}

func (a *App) applyGlobal(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionBack:
		a.pop()
	}
	return a, nil
}

func (a *App) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.current() {
	case screenFlavor:
		a.flavor, cmd = a.flavor.Update(msg)
	case screenPickup:
		a.pickup, cmd = a.pickup.Update(msg)
	}
	return a, cmd
}

func (a *App) moveStartCursor(keyName string) {
	switch keyName {
	case "k", "up":
		if a.startCursor > 0 {
			a.startCursor--
		}
	default:
		if a.startCursor < len(a.cfg.Menu.Quantities)-1 {
			a.startCursor++
		}
	}
}

func (a *App) chooseQuantity(i int) {
	if i < 0 || i >= len(a.cfg.Menu.Quantities) {
		return
	}
	a.startCursor = i
	a.state.SetQuantity(a.cfg.Menu.Quantities[i].Count)
	a.setStatus("")
	a.push(screenFlavor)
}

func (a *App) cancelOrder() {
	a.log.Info("order cancelled", zap.String("screen", string(a.current())))
	a.restart()
	a.setStatus("Order cancelled")
}

func (a *App) send() tea.Cmd {
	if a.sending {
		return nil
	}
	if err := a.state.Order().Validate(); err != nil {
		a.setError(err)
		return nil
	}
	a.sending = true
	a.setStatus("Sending order…")
	return a.submitOrder()
}

// handleMouse translates clicks into body coordinates and routes them.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	local := msg
	local.X -= bodyLeft
	local.Y -= a.bodyTop()
	if local.X < 0 || local.Y < 0 {
		return a, nil
	}
	switch a.current() {
	case screenFlavor, screenPickup:
		return a.updateOptions(local)
	}
	if !mouse.IsLeftClick(msg) {
		return a, nil
	}
	switch a.current() {
	case screenStart:
		if local.Y < len(a.cfg.Menu.Quantities) && local.X < a.bodyWidth() {
			a.chooseQuantity(local.Y)
		}
	case screenSummary:
		l := a.summaryLayout()
		switch {
		case l.send.Contains(local.X, local.Y):
			return a, a.send()
		case l.cancel.Contains(local.X, local.Y):
			a.cancelOrder()
		}
	}
	return a, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
