package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are rebuilt from the current theme on every render so that theme
// switches apply immediately.
type styles struct {
	panel   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	hint    lipgloss.Style
	canvas  lipgloss.Style
	graph   lipgloss.Style
}

func themeStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		running: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		canvas:  lipgloss.NewStyle().Foreground(t.Secondary),
		graph:   lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// Separator draws a decorative rule of the given width.
func Separator(t Theme, width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}
