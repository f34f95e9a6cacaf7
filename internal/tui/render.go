package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/cupcake/internal/pricing"
	"github.com/jask/cupcake/internal/tui/mouse"
	"github.com/jask/cupcake/internal/tui/theme"
)

const (
	appName = "cupcake"

	bodyLeft = 2

	// HeaderBar horizontal padding
	headerPadding = 4

	minBodyWidth = 24
	maxBodyWidth = 60
)

func (a *App) bodyWidth() int {
	if a.width <= 0 {
		return 40
	}
	w := a.width - 2*bodyLeft
	if w < minBodyWidth {
		w = minBodyWidth
	}
	if w > maxBodyWidth {
		w = maxBodyWidth
	}
	return w
}

// bodyTop is the row of the first body line: the header plus a blank line.
func (a *App) bodyTop() int {
	return lipgloss.Height(a.renderHeader()) + 1
}

func (a *App) View() string {
	var body string
	var bindings []key.Binding
	switch a.current() {
	case screenStart:
		body = a.renderStart()
		bindings = a.keys.HelpBindings(scopeStart)
	case screenFlavor:
		body = a.flavor.View()
		bindings = a.optionsHelp(a.flavor.Keys().ShortHelp())
	case screenPickup:
		body = a.pickup.View()
		bindings = a.optionsHelp(a.pickup.Keys().ShortHelp())
	case screenSummary:
		body = a.renderSummary()
		bindings = a.keys.HelpBindings(scopeSummary)
	}

	header := a.renderHeader()
	indented := lipgloss.NewStyle().PaddingLeft(bodyLeft).Render(body)
	return a.placeWithFooter(header+"\n\n"+indented, a.renderStatus(), a.renderFooter(bindings))
}

func (a *App) optionsHelp(own []key.Binding) []key.Binding {
	return append(own, a.keys.HelpBindings(scopeGlobal)...)
}

func (a *App) renderHeader() string {
	content := theme.HeaderApp.Render(appName) + "  " + theme.Title.Render(screenTitles[a.current()])
	if a.width <= 0 {
		return theme.HeaderBar.Render(content)
	}
	// Keep the header on one line so body rows stay where the mouse expects them.
	content = ansi.Truncate(content, max(0, a.width-headerPadding), "…")
	return theme.HeaderBar.Width(a.width).Render(content)
}

func (a *App) renderStart() string {
	lines := make([]string, 0, len(a.cfg.Menu.Quantities))
	for i, q := range a.cfg.Menu.Quantities {
		if i == a.startCursor {
			lines = append(lines, theme.Cursor.Render("›")+" "+theme.OptionFocused.Render(q.Label))
			continue
		}
		lines = append(lines, "  "+theme.OptionLabel.Render(q.Label))
	}
	return strings.Join(lines, "\n")
}

// summaryLayout mirrors renderSummary: three detail rows, divider, subtotal,
// blank line, buttons.
type summaryLayout struct {
	width       int
	buttonsY    int
	buttonWidth int
	send        mouse.Rect
	cancel      mouse.Rect
}

const summaryButtonGap = 2

func (a *App) summaryLayout() summaryLayout {
	w := a.bodyWidth()
	l := summaryLayout{width: w, buttonsY: 6}
	l.buttonWidth = max(1, (w-summaryButtonGap)/2)
	l.send = mouse.Rect{X: 0, Y: l.buttonsY, W: l.buttonWidth, H: 1}
	l.cancel = mouse.Rect{X: l.buttonWidth + summaryButtonGap, Y: l.buttonsY, W: l.buttonWidth, H: 1}
	return l
}

func (a *App) renderSummary() string {
	o := a.state.Order()
	l := a.summaryLayout()

	row := func(k, v string) string {
		return theme.SummaryKey.Render(fmt.Sprintf("%-10s", k)) + theme.SummaryValue.Render(v)
	}
	lines := []string{
		row("Quantity", quantityText(o.Quantity)),
		row("Flavor", o.Flavor),
		row("Pickup", o.PickupDate),
		theme.Divider.Render(strings.Repeat("─", l.width)),
		lipgloss.PlaceHorizontal(l.width, lipgloss.Right, theme.Subtotal.Render(pricing.Label(a.state.Subtotal()))),
		"",
	}
	sendStyle := theme.ButtonFilled
	if a.sending {
		sendStyle = theme.ButtonDisabled
	}
	send := sendStyle.Width(l.buttonWidth).Align(lipgloss.Center).Render("Send Order")
	cancel := theme.ButtonOutlined.Width(l.buttonWidth).Align(lipgloss.Center).Render("Cancel")
	lines = append(lines, send+strings.Repeat(" ", summaryButtonGap)+cancel)
	return strings.Join(lines, "\n")
}

func quantityText(n int) string {
	if n == 1 {
		return "1 cupcake"
	}
	return fmt.Sprintf("%d cupcakes", n)
}

func (a *App) renderStatus() string {
	text := strings.ReplaceAll(a.status, "\n", " ")
	style := theme.StatusBar
	if a.statusErr {
		style = theme.StatusError
	}
	if a.width <= 0 {
		return style.Render(text)
	}
	return style.Width(a.width).Render(text)
}

func (a *App) renderFooter(bindings []key.Binding) string {
	// Every character carries the footer background.
	bg := theme.Mantle
	keyStyle := theme.HelpKey.Background(bg)
	descStyle := theme.HelpDesc.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width <= 0 {
		return theme.Footer.Render(content)
	}
	return theme.Footer.Width(a.width).Render(content)
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height <= 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}
