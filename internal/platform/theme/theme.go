package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
)

// Styles renders report text. Styles bound to a non-terminal writer emit
// plain text, so captured output stays byte-exact.
type Styles struct {
	Title lipgloss.Style
	Good  lipgloss.Style
	Hot   lipgloss.Style
	Error lipgloss.Style
}

func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title: r.NewStyle().Foreground(Sapphire).Bold(true),
		Good:  r.NewStyle().Foreground(Green),
		Hot:   r.NewStyle().Foreground(Peach).Bold(true),
		Error: r.NewStyle().Foreground(Red),
	}
}

// Plain returns unstyled styles.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Good: s, Hot: s, Error: s}
}

// TUI styles.
var (
	App = lipgloss.NewStyle().
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
)
