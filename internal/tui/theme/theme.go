// Package theme holds the Catppuccin Mocha palette and the shared styles.
package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	Rosewater lipgloss.Color = "#f5e0dc"
	Pink      lipgloss.Color = "#f5c2e7"
	Mauve     lipgloss.Color = "#cba6f7"
	Red       lipgloss.Color = "#f38ba8"
	Peach     lipgloss.Color = "#fab387"
	Yellow    lipgloss.Color = "#f9e2af"
	Green     lipgloss.Color = "#a6e3a1"
	Teal      lipgloss.Color = "#94e2d5"
	Lavender  lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Subtext1 lipgloss.Color = "#bac2de"
	Subtext0 lipgloss.Color = "#a6adc8"
	Overlay1 lipgloss.Color = "#7f849c"
	Overlay0 lipgloss.Color = "#6c7086"
	Surface2 lipgloss.Color = "#585b70"
	Surface1 lipgloss.Color = "#45475a"
	Surface0 lipgloss.Color = "#313244"
	Base     lipgloss.Color = "#1e1e2e"
	Mantle   lipgloss.Color = "#181825"
)

// Semantic color aliases
const (
	Accent  = Pink
	Brand   = Pink
	Focus   = Lavender
	Success = Green
	Error   = Red
	Warning = Yellow
)

// AllPaletteColors returns every palette color in use, for validation.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		Rosewater, Pink, Mauve, Red, Peach, Yellow, Green, Teal, Lavender,
		Text, Subtext1, Subtext0, Overlay1, Overlay0,
		Surface2, Surface1, Surface0, Base, Mantle,
	}
}

var (
	// Screen titles
	Title = lipgloss.NewStyle().Foreground(Brand).Bold(true)

	// Header bar (spans full width)
	HeaderBar = lipgloss.NewStyle().
			Foreground(Text).
			Background(Mantle).
			Padding(0, 2)

	HeaderApp = lipgloss.NewStyle().
			Foreground(Brand).
			Bold(true)

	// Footer bar
	Footer = lipgloss.NewStyle().
		Foreground(Subtext0).
		Background(Mantle).
		Padding(0, 2)

	// Status bar (above footer)
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtext1).
			Background(Surface0).
			Padding(0, 2)

	StatusError = StatusBar.Foreground(Error)

	HelpKey  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Subtext0)

	// Option rows
	Cursor        = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	RadioOn       = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	RadioOff      = lipgloss.NewStyle().Foreground(Overlay1)
	OptionLabel   = lipgloss.NewStyle().Foreground(Text)
	OptionFocused = lipgloss.NewStyle().Foreground(Focus).Bold(true)

	Divider  = lipgloss.NewStyle().Foreground(Surface2)
	Subtotal = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	// Buttons: outlined for secondary actions, filled for primary.
	ButtonOutlined = lipgloss.NewStyle().
			Foreground(Accent).
			Background(Surface0).
			Bold(true)

	ButtonFilled = lipgloss.NewStyle().
			Foreground(Base).
			Background(Accent).
			Bold(true)

	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Overlay0).
			Background(Surface0)

	// Summary rows
	SummaryKey   = lipgloss.NewStyle().Foreground(Subtext0)
	SummaryValue = lipgloss.NewStyle().Foreground(Text).Bold(true)
)
