package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	id       lipgloss.Style
	settled  lipgloss.Style
	pending  lipgloss.Style
	closed   lipgloss.Style
	warning  lipgloss.Style
	border   lipgloss.Style
	empty    lipgloss.Style
	unsynced lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")).Padding(0, 1),
		cell:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		id:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		settled:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		closed:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		border:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		empty:    lipgloss.NewStyle().Faint(true),
		unsynced: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
