package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// fragmentPanel frames a rendered fragment under its component name.
func fragmentPanel(name, fragment string) string {
	header := nameStyle.Render(name)
	body := strings.TrimRight(fragment, "\n")
	if body == "" {
		return panelStyle.Render(header)
	}
	return panelStyle.Render(header + "\n" + body)
}
