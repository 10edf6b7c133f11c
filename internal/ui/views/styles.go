package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Body        lipgloss.Style
	Cursor      lipgloss.Style
	FoldArrow   lipgloss.Style
	Mode        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")), // yellow, the terminal signals are warnings not failures
		Help:      lipgloss.NewStyle().Faint(true),
		Body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		FoldArrow: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Mode:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}

// GetLevelColor returns the color used for a heading at the given depth
func GetLevelColor(level int) string {
	switch level {
	case 1:
		return "99" // purple
	case 2:
		return "39" // blue
	case 3:
		return "78" // green
	case 4:
		return "214" // yellow
	default:
		return "252" // light gray for anything deeper
	}
}
