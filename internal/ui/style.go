package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/statusdeck/statusdeck/internal/status"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Faint(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	selectedNameStyle = nameStyle.Bold(true)

	dimStyle = lipgloss.NewStyle().Faint(true)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	bucketStyles = map[status.Bucket]lipgloss.Style{
		status.Operational: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		status.Degraded:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		status.Outage:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		status.Maintenance: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		status.Manual:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		status.Unknown:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")),
	}
)

// styleFor is a pure function of the classification bucket.
func styleFor(b status.Bucket) lipgloss.Style {
	if s, ok := bucketStyles[b]; ok {
		return s
	}
	return bucketStyles[status.Unknown]
}
