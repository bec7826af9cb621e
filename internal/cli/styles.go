package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ogulcanaydogan/billable-hours/pkg/hours"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// statusLabel renders an hour check status as a bracketed marker.
func statusLabel(s hours.Status) string {
	switch s {
	case hours.StatusValid:
		return successStyle.Render("[OK]")
	case hours.StatusOverLimit:
		return warningStyle.Render("[OVER LIMIT]")
	case hours.StatusInvalid:
		return errorStyle.Render("[INVALID]")
	default:
		return dimStyle.Render("[EMPTY]")
	}
}
