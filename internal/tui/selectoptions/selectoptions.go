// Package selectoptions renders a list of labels as radio choices with a
// subtotal and Cancel / Next actions.
//
// The screen owns only its selection. Everything else is reported to the host
// through Callbacks, invoked synchronously from Update; the message a callback
// returns comes back to the host as a tea.Cmd.
package selectoptions

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/cupcake/internal/pricing"
	"github.com/jask/cupcake/internal/tui/mouse"
	"github.com/jask/cupcake/internal/tui/theme"
)

const (
	defaultWidth = 40
	buttonGap    = 2
	noSelection  = -1
)

// Callbacks are the host hooks. A nil hook is a no-op.
type Callbacks struct {
	OnSelectionChanged func(label string) tea.Msg
	OnCancel           func() tea.Msg
	OnNext             func() tea.Msg
}

// KeyMap defines the keyboard bindings of the screen.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
	Next   key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Cancel: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
		Next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Cancel, k.Next}
}

// Model is the option selection screen.
type Model struct {
	options  []string
	subtotal string
	selected int
	cursor   int
	width    int
	keys     KeyMap
	cb       Callbacks
}

// New copies options; the list is fixed for the life of the screen.
func New(options []string, subtotal string, cb Callbacks) Model {
	return Model{
		options:  append([]string(nil), options...),
		subtotal: subtotal,
		selected: noSelection,
		keys:     DefaultKeyMap(),
		cb:       cb,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Options returns a copy of the labels.
func (m Model) Options() []string { return append([]string(nil), m.options...) }

// Selected returns the chosen label, or "" when nothing is chosen.
func (m Model) Selected() string {
	if m.selected == noSelection {
		return ""
	}
	return m.options[m.selected]
}

// HasSelection reports whether a row has been chosen.
func (m Model) HasSelection() bool { return m.selected != noSelection }

// NextEnabled reports whether the Next action is live.
func (m Model) NextEnabled() bool { return m.HasSelection() }

// Cursor is the highlighted row index.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Subtotal() string { return m.subtotal }

func (m Model) Keys() KeyMap { return m.keys }

// SetSubtotal replaces the displayed price; the host calls it after repricing.
func (m *Model) SetSubtotal(s string) { m.subtotal = s }

// SetWidth sets the render width. Zero falls back to a default.
func (m *Model) SetWidth(w int) { m.width = w }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			return m.choose(m.cursor)
		case key.Matches(msg, m.keys.Cancel):
			return m, m.cancel()
		case key.Matches(msg, m.keys.Next):
			return m, m.next()
		}
	case tea.MouseMsg:
		if !mouse.IsLeftClick(msg) {
			return m, nil
		}
		return m.click(msg.X, msg.Y)
	}
	return m, nil
}

// click dispatches a left click in screen-local coordinates.
func (m Model) click(x, y int) (Model, tea.Cmd) {
	l := m.layout()
	for i, r := range l.rows {
		if r.Contains(x, y) {
			return m.choose(i)
		}
	}
	switch {
	case l.cancel.Contains(x, y):
		return m, m.cancel()
	case l.next.Contains(x, y):
		return m, m.next()
	}
	return m, nil
}

func (m Model) choose(i int) (Model, tea.Cmd) {
	if i < 0 || i >= len(m.options) {
		return m, nil
	}
	m.selected = i
	m.cursor = i
	if m.cb.OnSelectionChanged == nil {
		return m, nil
	}
	return m, deliver(m.cb.OnSelectionChanged(m.options[i]))
}

func (m Model) cancel() tea.Cmd {
	if m.cb.OnCancel == nil {
		return nil
	}
	return deliver(m.cb.OnCancel())
}

func (m Model) next() tea.Cmd {
	if !m.NextEnabled() || m.cb.OnNext == nil {
		return nil
	}
	return deliver(m.cb.OnNext())
}

func deliver(msg tea.Msg) tea.Cmd {
	if msg == nil {
		return nil
	}
	return func() tea.Msg { return msg }
}

// ---------------------------------------------------------------------------
// Layout & rendering
// ---------------------------------------------------------------------------

// layout places, top to bottom: one line per option, the divider, the
// subtotal, a blank line and the button row.
type layout struct {
	width       int
	rows        []mouse.Rect
	dividerY    int
	subtotalY   int
	buttonsY    int
	buttonWidth int
	cancel      mouse.Rect
	next        mouse.Rect
}

func (m Model) layout() layout {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	l := layout{width: w}
	for i := range m.options {
		l.rows = append(l.rows, mouse.Rect{X: 0, Y: i, W: w, H: 1})
	}
	l.dividerY = len(m.options)
	l.subtotalY = l.dividerY + 1
	l.buttonsY = l.subtotalY + 2
	l.buttonWidth = max(1, (w-buttonGap)/2)
	l.cancel = mouse.Rect{X: 0, Y: l.buttonsY, W: l.buttonWidth, H: 1}
	l.next = mouse.Rect{X: l.buttonWidth + buttonGap, Y: l.buttonsY, W: l.buttonWidth, H: 1}
	return l
}

func (m Model) View() string {
	l := m.layout()
	lines := make([]string, 0, l.buttonsY+1)

	for i, opt := range m.options {
		lines = append(lines, m.renderRow(i, opt, l.width))
	}
	lines = append(lines, theme.Divider.Render(strings.Repeat("─", l.width)))

	subtotal := theme.Subtotal.Render(pricing.Label(m.subtotal))
	lines = append(lines, lipgloss.PlaceHorizontal(l.width, lipgloss.Right, subtotal))
	lines = append(lines, "")

	cancel := theme.ButtonOutlined.Width(l.buttonWidth).Align(lipgloss.Center).Render("Cancel")
	nextStyle := theme.ButtonDisabled
	if m.NextEnabled() {
		nextStyle = theme.ButtonFilled
	}
	next := nextStyle.Width(l.buttonWidth).Align(lipgloss.Center).Render("Next")
	lines = append(lines, cancel+strings.Repeat(" ", buttonGap)+next)

	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int, label string, width int) string {
	pointer := "  "
	labelStyle := theme.OptionLabel
	if i == m.cursor {
		pointer = theme.Cursor.Render("›") + " "
		labelStyle = theme.OptionFocused
	}
	radio := theme.RadioOff.Render("( )")
	if i == m.selected {
		radio = theme.RadioOn.Render("(•)")
	}
	// pointer + radio + space
	avail := width - 6
	if avail < 1 {
		avail = 1
	}
	return pointer + radio + " " + labelStyle.Render(ansi.Truncate(label, avail, "…"))
}
